package model

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Residuals writes prediction - observed into dst.
// dst, observed and input must all have the same length.
func (m *Model) Residuals(dst, observed, input []float64, p Params) error {
	if len(observed) != len(input) || len(dst) != len(input) {
		return fmt.Errorf("%w: dst %d, observed %d, input %d", ErrLengthMismatch, len(dst), len(observed), len(input))
	}

	y, err := m.Evaluate(input, p)
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = y[i] - observed[i]
	}
	return nil
}

// ResidualFunc adapts the default Model to the func(dst, x) shape used by
// least-squares solvers. x is (a, n, c, trimRatio) and dst receives
// prediction - observed. Evaluation errors fill dst with NaN.
func ResidualFunc(input, observed []float64) func(dst, x []float64) {
	return New().ResidualFunc(input, observed)
}

// ResidualFunc is like the package-level ResidualFunc but uses m.
func (m *Model) ResidualFunc(input, observed []float64) func(dst, x []float64) {
	return func(dst, x []float64) {
		p, err := ParamsFromVector(x)
		if err == nil {
			err = m.Residuals(dst, observed, input, p)
		}
		if err != nil {
			for i := range dst {
				dst[i] = math.NaN()
			}
		}
	}
}

// SumSquares returns the sum of squared residuals.
func SumSquares(residuals []float64) float64 {
	return vecmath.DotProduct(residuals, residuals)
}
