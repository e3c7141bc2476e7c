package wavelet

import "math"

// mexicanHatNorm is 2/(sqrt(3)*pi^(1/4)), the unit-energy factor for sigma = 1.
var mexicanHatNorm = 2 / (math.Sqrt(3) * math.Pow(math.Pi, 0.25))

// MexicanHat is the negated, normalized second derivative of a Gaussian:
//
//	psi(x) = 2/(sqrt(3*sigma)*pi^(1/4)) * (1 - x^2/sigma^2) * exp(-x^2/(2*sigma^2))
//
// sigma is read from params[0] and defaults to 1. The function is even.
type MexicanHat struct{}

// Name implements Kernel.
func (MexicanHat) Name() string { return "mexican-hat" }

// Evaluate implements Kernel.
func (MexicanHat) Evaluate(x float64, params []float64) float64 {
	sigma := 1.0
	if len(params) > 0 && params[0] > 0 && !math.IsInf(params[0], 0) {
		sigma = params[0]
	}

	u := x / sigma
	u2 := u * u
	return mexicanHatNorm / math.Sqrt(sigma) * (1 - u2) * math.Exp(-u2/2)
}

// Admissibility implements Kernel. For the unit-energy Mexican hat the
// constant is 8*sqrt(pi)/3 and does not depend on sigma.
func (MexicanHat) Admissibility() float64 {
	return 8 * math.Sqrt(math.Pi) / 3
}
