package cwt

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftCorrelator evaluates truncated-window correlations of one signal against
// several lookup tables. The zero-padded signal spectrum is computed once.
type fftCorrelator struct {
	n    int
	size int
	plan *algofft.Plan[complex128]

	// peak is max |signal|, used to bound rounding error.
	peak float64

	spectrum []complex128

	// Scratch buffers
	kernel     []complex128
	kernelFreq []complex128
	product    []complex128
	result     []complex128
}

// newFFTCorrelator prepares a correlator able to handle tables whose reach
// does not exceed maxReach.
func newFFTCorrelator(signal []float64, maxReach int) (*fftCorrelator, error) {
	n := len(signal)
	size := nextPowerOf2(max(n+2*maxReach, 2))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("cwt: failed to create FFT plan: %w", err)
	}

	var peak float64
	padded := make([]complex128, size)
	for i, v := range signal {
		padded[i] = complex(v, 0)
		peak = max(peak, math.Abs(v))
	}

	fc := &fftCorrelator{
		n:          n,
		size:       size,
		plan:       plan,
		peak:       peak,
		spectrum:   make([]complex128, size),
		kernel:     make([]complex128, size),
		kernelFreq: make([]complex128, size),
		product:    make([]complex128, size),
		result:     make([]complex128, size),
	}

	if err := plan.Forward(fc.spectrum, padded); err != nil {
		return nil, fmt.Errorf("cwt: forward FFT failed: %w", err)
	}
	return fc, nil
}

// correlate writes dst[tau] = sum(signal[tau+k]*lut[h+k]) / norm for k in
// [-r, r], treating samples outside the signal as zero.
func (fc *fftCorrelator) correlate(dst, lut []float64, h, r int, norm float64) error {
	if len(dst) != fc.n {
		return ErrLengthMismatch
	}
	if fc.n+2*r > fc.size {
		return fmt.Errorf("%w: reach %d exceeds prepared FFT size %d", ErrInvalidScale, r, fc.size)
	}

	// Correlation is convolution with the time-reversed table segment.
	for i := range fc.kernel {
		fc.kernel[i] = 0
	}
	for m := 0; m <= 2*r; m++ {
		fc.kernel[m] = complex(lut[h+r-m], 0)
	}

	if err := fc.plan.Forward(fc.kernelFreq, fc.kernel); err != nil {
		return fmt.Errorf("cwt: forward FFT failed: %w", err)
	}
	for i := range fc.product {
		fc.product[i] = fc.spectrum[i] * fc.kernelFreq[i]
	}
	if err := fc.plan.Inverse(fc.result, fc.product); err != nil {
		return fmt.Errorf("cwt: inverse FFT failed: %w", err)
	}

	// Full convolution index tau+r lines up with output position tau.
	// Rounding residue is flushed to zero so that silent stretches of the
	// signal stay exactly zero, as they do with the direct method.
	floor := fc.roundoffFloor(lut, h, r, norm)
	for tau := range dst {
		v := real(fc.result[tau+r]) / norm
		if math.Abs(v) <= floor {
			v = 0
		}
		dst[tau] = v
	}
	return nil
}

// fftRoundoff is the per-bin relative rounding error assumed for one
// forward/inverse round trip.
const fftRoundoff = 1e-15

// roundoffFloor bounds the absolute rounding error of one correlation output.
// Outputs at or below it are indistinguishable from zero.
func (fc *fftCorrelator) roundoffFloor(lut []float64, h, r int, norm float64) float64 {
	var l1 float64
	for k := -r; k <= r; k++ {
		l1 += math.Abs(lut[h+k])
	}
	return float64(fc.size) * fftRoundoff * fc.peak * l1 / norm
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
