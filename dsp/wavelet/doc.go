// Package wavelet provides mother-wavelet kernels for the continuous wavelet
// transform in [github.com/cwbudde/algo-cwtpeaks/dsp/cwt].
//
// A [Kernel] evaluates the wavelet shape at a normalized offset x = k/scale and
// reports the admissibility constant used to un-bias inverse reconstruction.
// Kernels are stateless and safe for concurrent use.
//
// # Built-in kernels
//
//   - [MexicanHat]: second derivative of a Gaussian (Ricker wavelet), shape
//     parameter sigma passed as params[0]
//
// Custom kernels can be supplied with [Func]:
//
//	k := wavelet.Func("box", 1, func(x float64, _ []float64) float64 {
//		if math.Abs(x) <= 1 {
//			return 1
//		}
//		return 0
//	})
package wavelet
