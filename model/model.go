package model

import (
	"github.com/cwbudde/algo-lagfit/dsp/conv"
	"github.com/cwbudde/algo-lagfit/dsp/kernel"
)

// Evaluate returns Conv(a*x^n, input) + c trimmed to len(input), with the
// kernel truncated at max/trimRatio. It always uses the FFT method.
func Evaluate(input []float64, a, n, c, trimRatio float64) ([]float64, error) {
	g := kernel.PowerLaw(len(input), a, n, trimRatio)
	return conv.Apply(g, input, c, conv.MethodFFT)
}

// Model evaluates the lag-response model with a configured convolution
// method. A Model is immutable and safe for concurrent use.
type Model struct {
	engine conv.Engine
}

// New creates a Model. Without options it behaves like Evaluate.
func New(opts ...Option) *Model {
	cfg := ApplyOptions(opts...)
	return &Model{
		engine: conv.Engine{Method: cfg.Method, BlockSize: cfg.BlockSize},
	}
}

// Method returns the configured convolution method.
func (m *Model) Method() conv.Method {
	return m.engine.Method
}

// Kernel builds the kernel p describes for an input of the given length.
func (m *Model) Kernel(length int, p Params) []float64 {
	return kernel.PowerLaw(length, p.A, p.N, p.TrimRatio)
}

// Evaluate returns the model prediction for input, always len(input) samples.
func (m *Model) Evaluate(input []float64, p Params) ([]float64, error) {
	return m.engine.Apply(m.Kernel(len(input), p), input, p.C)
}
