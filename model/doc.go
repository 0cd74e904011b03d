// Package model evaluates the lag-response model y = Conv(a*x^n, input) + c.
//
// The kernel a*x^n is a power-law memory built by package kernel on the
// time axis 1..len(input) and truncated at max/trimRatio; package conv
// convolves it with the input, keeps the first len(input) samples and adds the
// background constant c.
//
// Evaluate takes the parameters as flat scalars so it can be called from
// optimizers that work on positional parameter vectors:
//
//	y, err := model.Evaluate(input, a, n, c, trimRatio)
//
// For least-squares fitting, ResidualFunc adapts the model to the
// func(dst, x []float64) residual shape used by Levenberg-Marquardt solvers,
// with x ordered as (a, n, c, trimRatio):
//
//	f := model.ResidualFunc(input, observed)
//	f(residuals, []float64{a, n, c, trimRatio})
//
// The model does not guard against ill-posed parameters. NaN and Inf values
// flow through to the prediction; the optimizer is expected to keep its
// search inside Bounds.
package model
