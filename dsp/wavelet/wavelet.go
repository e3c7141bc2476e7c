package wavelet

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKernel is returned by [Lookup] for an unregistered kernel name.
var ErrUnknownKernel = errors.New("wavelet: unknown kernel")

// Kernel is a mother wavelet evaluated at normalized offsets.
type Kernel interface {
	// Name returns a short identifier for the kernel.
	Name() string

	// Evaluate returns the wavelet value at normalized offset x. params carries
	// kernel-specific shape parameters; missing values fall back to defaults.
	Evaluate(x float64, params []float64) float64

	// Admissibility returns the admissibility constant of the kernel.
	Admissibility() float64
}

type funcKernel struct {
	name  string
	c     float64
	shape func(x float64, params []float64) float64
}

func (k funcKernel) Name() string                                 { return k.name }
func (k funcKernel) Evaluate(x float64, params []float64) float64 { return k.shape(x, params) }
func (k funcKernel) Admissibility() float64                       { return k.c }

// Func adapts a plain shape function and its admissibility constant to the
// Kernel interface.
func Func(name string, admissibility float64, shape func(x float64, params []float64) float64) Kernel {
	return funcKernel{name: name, c: admissibility, shape: shape}
}

var builtin = map[string]Kernel{
	"mexican-hat": MexicanHat{},
	"ricker":      MexicanHat{},
}

// Lookup resolves a built-in kernel by name (case-insensitive).
func Lookup(name string) (Kernel, error) {
	k, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return k, nil
}

// Names returns the sorted names accepted by [Lookup].
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
