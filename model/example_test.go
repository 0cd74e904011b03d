package model_test

import (
	"fmt"

	"github.com/cwbudde/algo-lagfit/model"
)

func ExampleEvaluate() {
	input := []float64{1, 1, 1, 1, 1}

	// Constant memory with no truncation: the response integrates the input.
	y, _ := model.Evaluate(input, 1, 0, 0, 1e6)
	fmt.Printf("%.1f\n", y)

	// Output:
	// [1.0 2.0 3.0 4.0 5.0]
}

func ExampleResidualFunc() {
	input := []float64{0, 1, 1, 1, 1, 1, 1, 1}
	observed, _ := model.Evaluate(input, 2, -1, 0.5, 100)

	f := model.ResidualFunc(input, observed)
	residuals := make([]float64, len(input))

	f(residuals, []float64{2, -1, 0.5, 100})
	fmt.Printf("at the true parameters: %.3f\n", model.SumSquares(residuals))

	f(residuals, []float64{2, -1, 1.5, 100})
	fmt.Printf("offset by one:          %.3f\n", model.SumSquares(residuals))

	// Output:
	// at the true parameters: 0.000
	// offset by one:          8.000
}
