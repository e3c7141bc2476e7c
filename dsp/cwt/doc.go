// Package cwt computes discrete continuous-wavelet-transform responses of a
// sampled signal, one scale at a time or as a full scaleogram.
//
// The transform is table driven: for a scale s a lookup table of
// 2*floor(s)+1 kernel values psi(k/s) is built once and correlated with the
// signal. At the signal edges the summation window is truncated rather than
// padded or reflected, so responses near the boundaries see fewer samples.
// Every response is divided by sqrt(s) so magnitudes are comparable across
// scales.
//
// # Usage
//
//	tr, err := cwt.New(wavelet.MexicanHat{}, cwt.WithParams(1))
//	resp, err := tr.Apply(signal, 4)        // one scale
//	sg, err := tr.Scaleogram(signal, 20)    // scales 1..20
//	rec, err := tr.InverseScaleogram(sg)    // reconstruction
//
// # Evaluation methods
//
//   - [MethodDirect]: multiply-accumulate over the truncated window, O(N*s)
//     per scale. This is the default.
//   - [MethodFFT]: zero-padded FFT correlation. Zero padding reproduces the
//     truncated window exactly (up to rounding); the signal spectrum is shared
//     by all scales of a scaleogram, which pays off for long traces and large
//     scales.
package cwt
