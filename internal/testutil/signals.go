package testutil

import (
	"math"
	"math/rand"
)

// Bump describes a Gaussian-shaped chromatographic peak.
type Bump struct {
	Center float64 // sample position of the apex, may be fractional
	Sigma  float64 // standard deviation in samples
	Height float64
}

// GaussianBumps returns length samples holding the sum of bumps.
func GaussianBumps(length int, bumps ...Bump) []float64 {
	out := make([]float64, length)
	for _, b := range bumps {
		den := 2 * b.Sigma * b.Sigma
		for i := range out {
			d := float64(i) - b.Center
			out[i] += b.Height * math.Exp(-d*d/den)
		}
	}
	return out
}

// Axis returns length evenly spaced values start, start+step, ...
func Axis(length int, start, step float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
