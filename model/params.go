package model

import (
	"errors"
	"fmt"
	"math"
)

// NumParams is the length of a positional parameter vector.
const NumParams = 4

// Errors returned by parameter handling and residual evaluation.
var (
	ErrInvalidParams  = errors.New("model: invalid parameters")
	ErrLengthMismatch = errors.New("model: length mismatch")
)

// Params is one candidate parameter tuple.
type Params struct {
	// A scales the kernel and N is its exponent.
	A float64 `yaml:"a" json:"a"`
	N float64 `yaml:"n" json:"n"`

	// C is the background constant added to the convolution.
	C float64 `yaml:"c" json:"c"`

	// TrimRatio divides the kernel peak to give the truncation level.
	TrimRatio float64 `yaml:"trim_ratio" json:"trim_ratio"`
}

// Vector returns p as (a, n, c, trimRatio).
func (p Params) Vector() []float64 {
	return []float64{p.A, p.N, p.C, p.TrimRatio}
}

// ParamsFromVector reads a positional (a, n, c, trimRatio) vector.
func ParamsFromVector(x []float64) (Params, error) {
	if len(x) != NumParams {
		return Params{}, fmt.Errorf("%w: vector has %d values, want %d", ErrInvalidParams, len(x), NumParams)
	}
	return Params{A: x[0], N: x[1], C: x[2], TrimRatio: x[3]}, nil
}

// Validate reports parameters that cannot produce a well-defined kernel.
// Evaluate itself never validates.
func (p Params) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{{"a", p.A}, {"n", p.N}, {"c", p.C}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite: %v", ErrInvalidParams, f.name, f.value)
		}
	}
	if !(p.TrimRatio > 1) {
		return fmt.Errorf("%w: trim_ratio must be > 1: %v", ErrInvalidParams, p.TrimRatio)
	}
	return nil
}

// Bounds is an inclusive box around the parameter space.
type Bounds struct {
	Lower Params
	Upper Params
}

// DefaultBounds leaves a and c free, limits the exponent to [-10, 10] and
// keeps trimRatio strictly above 1.
func DefaultBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Lower: Params{A: -inf, N: -10, C: -inf, TrimRatio: math.Nextafter(1, 2)},
		Upper: Params{A: inf, N: 10, C: inf, TrimRatio: 1e12},
	}
}

// Contains reports whether every parameter of p lies inside b.
// NaN values are never contained.
func (b Bounds) Contains(p Params) bool {
	lo, hi, x := b.Lower.Vector(), b.Upper.Vector(), p.Vector()
	for i := range x {
		if !(x[i] >= lo[i] && x[i] <= hi[i]) {
			return false
		}
	}
	return true
}

// Clamp returns p with every parameter limited to b. NaN values are
// replaced by the lower bound.
func (b Bounds) Clamp(p Params) Params {
	lo, hi, x := b.Lower.Vector(), b.Upper.Vector(), p.Vector()
	for i := range x {
		switch {
		case math.IsNaN(x[i]) || x[i] < lo[i]:
			x[i] = lo[i]
		case x[i] > hi[i]:
			x[i] = hi[i]
		}
	}
	clamped, _ := ParamsFromVector(x)
	return clamped
}
