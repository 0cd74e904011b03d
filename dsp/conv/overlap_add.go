package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd implements FFT-based convolution using the overlap-add method.
// The kernel spectrum is computed once and reused by every Process call.
//
// The algorithm:
// 1. Divide input signal into non-overlapping blocks
// 2. Zero-pad each block to FFT size
// 3. Multiply with the kernel spectrum and transform back
// 4. Overlap-add the block results to form the full convolution
//
// Transform round-off is proportional to the largest output sample, so small
// samples next to a large one lose relative precision. Use Direct when every
// sample must be accurate on its own scale.
type OverlapAdd struct {
	kernelFFT []complex128

	kernelLen int
	blockSize int // Input block size
	fftSize   int // blockSize + kernelLen - 1, rounded to power of 2

	plan *algofft.Plan[complex128]
}

// NewOverlapAdd creates a new overlap-add convolver for the given kernel.
// If blockSize is 0, an automatic size is chosen based on kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	kernelLen := len(kernel)

	if blockSize == 0 {
		// Rule of thumb: block size roughly equal to or larger than kernel
		blockSize = nextPowerOf2(kernelLen)
		if blockSize < 256 {
			blockSize = 256
		}
	}

	fftSize := max(nextPowerOf2(blockSize+kernelLen-1), minFFTSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: kernelLen,
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
	}

	for i, v := range kernel {
		oa.kernelFFT[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelFFT, oa.kernelFFT); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// Process convolves the input signal with the kernel.
// Returns the full linear convolution result of length len(input)+len(kernel)-1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.accumulate(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// accumulate adds the convolution of input with the kernel into output.
func (oa *OverlapAdd) accumulate(output, input []float64) error {
	block := make([]complex128, oa.fftSize)
	outputLen := len(output)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))
		blockLen := end - start

		for i := range block {
			block[i] = 0
		}
		for i := 0; i < blockLen; i++ {
			block[i] = complex(input[start+i], 0)
		}

		if err := oa.plan.Forward(block, block); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range block {
			block[i] *= oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(block, block); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		// A block of length L convolved with a kernel of length M yields
		// L + M - 1 samples, all added at the block's start position.
		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			output[start+i] += real(block[i])
		}
	}

	return nil
}
