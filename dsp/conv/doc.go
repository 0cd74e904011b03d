// Package conv provides the linear convolution routines used to evaluate
// power-law lag-response models.
//
// Two algorithms compute the same causal response of an input series to a
// kernel:
//
//   - Discrete: the "moving window" method. Every input sample injects a
//     scaled copy of the kernel starting at its own index. O(N*K).
//   - FFT: the full N+K-1 linear convolution trimmed back to the input
//     length. By default the full result is summed term by term (O(N*K));
//     Engine.BlockSize switches to algo-fft overlap-add (O(N log K)).
//
// # Usage
//
// The model path trims the convolution to the input length and adds a
// constant background level:
//
//	y, err := conv.Apply(kernel, input, c, conv.MethodFFT)
//
// Method names can be parsed from configuration or command-line flags:
//
//	m, err := conv.ParseMethod("discrete")
//
// With the default engine both methods agree sample by sample up to
// floating-point rounding. Overlap-add results agree relative to the output
// peak only.
//
// # Full convolution
//
// The lower level helpers return the full len(a)+len(b)-1 result:
//
//	full, err := conv.Direct(signal, kernel)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	oa, err := conv.NewOverlapAdd(kernel, blockSize)
//	full, err := oa.Process(signal)
package conv
