//go:build !fastmath

package kernel

import "math"

func power(t, n float64) float64 {
	return math.Pow(t, n)
}
