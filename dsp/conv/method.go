package conv

import "fmt"

// Method selects the algorithm used by Apply.
type Method int

const (
	// MethodFFT computes the full len(input)+len(kernel)-1 linear convolution
	// and keeps its first len(input) samples. The full result is summed
	// exactly unless Engine.BlockSize selects FFT overlap-add.
	MethodFFT Method = iota

	// MethodDiscrete accumulates a scaled, shifted copy of the kernel for
	// every input sample ("moving window") and keeps the first len(input)
	// samples of the working buffer.
	MethodDiscrete
)

// ErrInvalidMethod is returned for method names or values Apply does not know.
var ErrInvalidMethod = fmt.Errorf("%w: unknown convolution method", ErrInvalidArgument)

// String returns the method's configuration name.
func (m Method) String() string {
	switch m {
	case MethodFFT:
		return "fft"
	case MethodDiscrete:
		return "discrete"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "discrete" or "fft" to a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "fft":
		return MethodFFT, nil
	case "discrete":
		return MethodDiscrete, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, name)
	}
}

// Engine convolves kernels against input series with a fixed algorithm.
// The zero value uses MethodFFT with an exact full convolution.
type Engine struct {
	Method Method

	// BlockSize switches MethodFFT to algo-fft overlap-add with blocks of this
	// many input samples. Its error is bounded relative to the output peak,
	// not per sample. Zero keeps the exact sum.
	BlockSize int
}

// Apply computes Conv(kernel, input) trimmed to len(input) plus the background
// constant c, using method.
func Apply(kernel, input []float64, c float64, method Method) ([]float64, error) {
	return Engine{Method: method}.Apply(kernel, input, c)
}

// Apply computes Conv(kernel, input) trimmed to len(input) plus c.
// The result is freshly allocated and always has len(input) samples.
func (e Engine) Apply(kernel, input []float64, c float64) ([]float64, error) {
	if e.Method != MethodFFT && e.Method != MethodDiscrete {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, e.Method)
	}
	if e.BlockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, e.BlockSize)
	}
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	var (
		y   []float64
		err error
	)

	switch e.Method {
	case MethodDiscrete:
		y = discrete(kernel, input)
	case MethodFFT:
		y, err = e.fft(kernel, input)
		if err != nil {
			return nil, err
		}
	}

	AddOffset(y, c)
	return y, nil
}

// discrete runs the moving-window accumulation over a len(input)+len(kernel)
// buffer and returns its first len(input) samples.
func discrete(kernel, input []float64) []float64 {
	nx := len(input)
	work := make([]float64, nx+len(kernel))
	DirectTo(work, input, kernel)
	return Causal(work, nx)
}

// fft computes the full convolution (length N+K-1) and keeps its first
// (N+K-1)-K+1 = N samples.
func (e Engine) fft(kernel, input []float64) ([]float64, error) {
	var (
		full []float64
		err  error
	)

	if e.BlockSize > 0 {
		var oa *OverlapAdd
		oa, err = NewOverlapAdd(kernel, e.BlockSize)
		if err != nil {
			return nil, err
		}
		full, err = oa.Process(input)
	} else {
		full, err = Direct(input, kernel)
	}
	if err != nil {
		return nil, err
	}

	return Causal(full, len(full)-len(kernel)+1), nil
}
