package cwt

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cwtpeaks/dsp/wavelet"
)

// Errors returned by the transform.
var (
	ErrEmptyInput           = errors.New("cwt: empty input")
	ErrInvalidScale         = errors.New("cwt: invalid scale")
	ErrLengthMismatch       = errors.New("cwt: buffer length mismatch")
	ErrNilKernel            = errors.New("cwt: nil kernel")
	ErrInvalidAdmissibility = errors.New("cwt: kernel admissibility constant must be finite and non-zero")
	ErrUnknownMethod        = errors.New("cwt: unknown method")
)

// Method selects how responses are evaluated.
type Method int

const (
	// MethodDirect sums over the truncated window in the time domain.
	MethodDirect Method = iota

	// MethodFFT correlates via zero-padded FFTs.
	MethodFFT
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses "direct" or "fft".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodDirect, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Option configures a Transform.
type Option func(*config)

type config struct {
	params []float64
	method Method
}

// WithParams binds kernel shape parameters (for the Mexican hat: sigma).
func WithParams(params ...float64) Option {
	return func(c *config) {
		c.params = append([]float64(nil), params...)
	}
}

// WithMethod selects the evaluation method.
func WithMethod(m Method) Option {
	return func(c *config) {
		if m == MethodDirect || m == MethodFFT {
			c.method = m
		}
	}
}

// Transform evaluates CWT responses for one kernel and parameter set.
// It holds no mutable state and is safe for concurrent use.
type Transform struct {
	kernel wavelet.Kernel
	params []float64
	method Method
}

// New creates a transform for kernel.
func New(kernel wavelet.Kernel, opts ...Option) (*Transform, error) {
	if kernel == nil {
		return nil, ErrNilKernel
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Transform{kernel: kernel, params: cfg.params, method: cfg.method}, nil
}

// Kernel returns the wavelet kernel.
func (t *Transform) Kernel() wavelet.Kernel { return t.kernel }

// Method returns the evaluation method.
func (t *Transform) Method() Method { return t.method }

// Params returns a copy of the bound kernel parameters.
func (t *Transform) Params() []float64 { return append([]float64(nil), t.params...) }

// LookupTable returns the 2*floor(scale)+1 kernel values psi(k/scale) for
// k = -floor(scale)..floor(scale).
func (t *Transform) LookupTable(scale float64) ([]float64, error) {
	if err := validateScale(scale); err != nil {
		return nil, err
	}
	return t.lut(scale), nil
}

func (t *Transform) lut(scale float64) []float64 {
	h := halfWidth(scale)
	out := make([]float64, 2*h+1)
	for k := -h; k <= h; k++ {
		out[k+h] = t.kernel.Evaluate(float64(k)/scale, t.params)
	}
	return out
}

// Apply returns the response of signal at scale. The result has len(signal).
func (t *Transform) Apply(signal []float64, scale float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(signal))
	if err := t.ApplyTo(out, signal, scale); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyTo writes the response of signal at scale into dst.
// dst must have the same length as signal.
func (t *Transform) ApplyTo(dst, signal []float64, scale float64) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if len(dst) != len(signal) {
		return ErrLengthMismatch
	}
	if err := validateScale(scale); err != nil {
		return err
	}

	lut := t.lut(scale)
	h, r := halfWidth(scale), reach(scale)
	norm := sqrtScale(scale)

	if t.method == MethodFFT {
		fc, err := newFFTCorrelator(signal, r)
		if err != nil {
			return err
		}
		return fc.correlate(dst, lut, h, r, norm)
	}

	correlateTruncated(dst, signal, lut, h, r, norm, make([]float64, 2*r+1))
	return nil
}

// Inverse reconstructs a signal from per-scale responses. For every scale the
// lookup table is rebuilt and response[t]*lut[t-tau]/scale^2 is accumulated
// over the truncated window; the sum is finally divided by the square of the
// kernel's admissibility constant.
func (t *Transform) Inverse(responses [][]float64, scales []float64) ([]float64, error) {
	if len(responses) == 0 || len(responses[0]) == 0 {
		return nil, ErrEmptyInput
	}
	if len(responses) != len(scales) {
		return nil, fmt.Errorf("%w: %d responses for %d scales", ErrLengthMismatch, len(responses), len(scales))
	}

	c := t.kernel.Admissibility()
	if c == 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, ErrInvalidAdmissibility
	}

	n := len(responses[0])
	out := make([]float64, n)
	col := make([]float64, n)

	for i, scale := range scales {
		if len(responses[i]) != n {
			return nil, fmt.Errorf("%w: response %d has length %d, want %d", ErrLengthMismatch, i, len(responses[i]), n)
		}
		if err := validateScale(scale); err != nil {
			return nil, err
		}

		h, r := halfWidth(scale), reach(scale)
		correlateTruncated(col, responses[i], t.lut(scale), h, r, scale*scale, make([]float64, 2*r+1))
		for j, v := range col {
			out[j] += v
		}
	}

	c2 := c * c
	for i := range out {
		out[i] /= c2
	}
	return out, nil
}

// correlateTruncated writes dst[tau] = sum(src[t]*lut[t-tau+h]) / norm for t in
// [tau-r, tau+r] clipped to the signal. scratch must hold 2r+1 values.
func correlateTruncated(dst, src, lut []float64, h, r int, norm float64, scratch []float64) {
	n := len(src)
	for tau := 0; tau < n; tau++ {
		lo := max(0, tau-r)
		hi := min(n-1, tau+r)

		prod := scratch[:hi-lo+1]
		vecmath.MulBlock(prod, src[lo:hi+1], lut[lo-tau+h:hi-tau+h+1])

		var sum float64
		for _, v := range prod {
			sum += v
		}
		dst[tau] = sum / norm
	}
}

func validateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 1 {
		return fmt.Errorf("%w: %v (must be >= 1)", ErrInvalidScale, scale)
	}
	return nil
}

// sqrtScale is the energy normalization applied to every response.
func sqrtScale(scale float64) float64 {
	return math.Sqrt(scale)
}

// halfWidth is floor(scale), the lookup table half length.
func halfWidth(scale float64) int {
	return int(math.Floor(scale))
}

// reach is the largest integer offset k with |k| <= scale-1.
func reach(scale float64) int {
	return int(math.Floor(scale - 1))
}
