package testutil

import (
	"math"
	"testing"
)

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// NormalizedCorrelation returns <a,b>/(|a||b|), the cosine similarity of two
// equal-length slices. It returns 0 if either slice has zero energy.
func NormalizedCorrelation(a, b []float64) float64 {
	var ab, aa, bb float64
	for i := range a {
		ab += a[i] * b[i]
		aa += a[i] * a[i]
		bb += b[i] * b[i]
	}
	if aa == 0 || bb == 0 {
		return 0
	}
	return ab / math.Sqrt(aa*bb)
}

// Gain returns the least-squares factor g minimizing |got - g*want|.
func Gain(got, want []float64) float64 {
	var gw, ww float64
	for i := range want {
		gw += got[i] * want[i]
		ww += want[i] * want[i]
	}
	if ww == 0 {
		return 0
	}
	return gw / ww
}
