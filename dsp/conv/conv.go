package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
	ErrInvalidArgument  = errors.New("conv: invalid argument")
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// The sum is evaluated term by term, so every output sample carries only its
// own rounding error. For long kernels where peak-relative accuracy is
// enough, use OverlapAdd.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must hold at least len(a) + len(b) - 1 samples; it is cleared first.
func DirectTo(dst, a, b []float64) {
	n := len(a)
	m := len(b)

	for i := range dst {
		dst[i] = 0
	}

	// Use SIMD-accelerated path for kernels >= 4 samples
	const simdThreshold = 4
	if m >= simdThreshold {
		directToSIMD(dst, a, b, n, m)
	} else {
		directToScalar(dst, a, b, n, m)
	}
}

func directToScalar(dst, a, b []float64, n, m int) {
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToSIMD adds b scaled by each a[i] into dst[i:i+m].
func directToSIMD(dst, a, b []float64, n, m int) {
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Causal returns the first n samples of a full convolution result, i.e. the
// response at the input's own time indices. Shorter inputs are zero-extended.
func Causal(full []float64, n int) []float64 {
	if n <= len(full) {
		return full[:n:n]
	}
	out := make([]float64, n)
	copy(out, full)
	return out
}

// AddOffset adds the constant c to every element of dst in place.
func AddOffset(dst []float64, c float64) {
	if c == 0 {
		return
	}
	for i := range dst {
		dst[i] += c
	}
}

// minFFTSize is the smallest transform length requested from algo-fft.
const minFFTSize = 16

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
