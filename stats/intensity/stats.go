// Package intensity provides summary statistics, min-max normalization and
// percentiles for chromatographic intensity traces.
package intensity

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Errors returned by the package.
var (
	ErrEmptyInput        = errors.New("intensity: empty input")
	ErrNoDynamicRange    = errors.New("intensity: signal has no dynamic range")
	ErrInvalidPercentile = errors.New("intensity: percentile must be in [0, 100]")
	ErrLengthMismatch    = errors.New("intensity: buffer length mismatch")
)

// Stats holds summary statistics of an intensity trace.
type Stats struct {
	Length   int
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64 // max - min
	Mean     float64
	Variance float64 // population variance
	Total    float64 // sum of all samples
}

// Flat reports whether the trace has no dynamic range.
func (s Stats) Flat() bool {
	return s.Range == 0
}

// Calculate computes all statistics in a single pass. Mean and variance use
// Welford's online update.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean   float64
		m2     float64
		total  float64
		maxVal = signal[0]
		maxPos int
		minVal = signal[0]
		minPos int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
		total += x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	return Stats{
		Length:   n,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Range:    maxVal - minVal,
		Mean:     mean,
		Variance: m2 / float64(n),
		Total:    total,
	}
}

// Normalize maps signal onto [0, 1] with (x - min) / (max - min).
func Normalize(signal []float64) ([]float64, error) {
	out := make([]float64, len(signal))
	if err := NormalizeTo(out, signal); err != nil {
		return nil, err
	}
	return out, nil
}

// NormalizeTo writes the min-max normalization of signal into dst.
// A flat signal yields ErrNoDynamicRange and leaves dst untouched.
func NormalizeTo(dst, signal []float64) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if len(dst) != len(signal) {
		return ErrLengthMismatch
	}

	s := Calculate(signal)
	if s.Flat() {
		return ErrNoDynamicRange
	}

	for i, x := range signal {
		dst[i] = (x - s.Min) / s.Range
	}
	return nil
}

// Percentile returns the p-th percentile (p in [0, 100]) of values using
// linear interpolation between closest ranks. values is not modified.
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPercentile, p)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return PercentileSorted(sorted, p), nil
}

// PercentileSorted is Percentile for an ascending slice. p is clamped to
// [0, 100]; an empty slice yields 0.
func PercentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}

	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
