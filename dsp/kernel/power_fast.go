//go:build fastmath

package kernel

import "github.com/meko-christian/algo-approx"

// power computes t^n as exp(n*ln t) using fast approximations.
// The time axis starts at 1, so ln t is always defined.
func power(t, n float64) float64 {
	if n == 0 {
		return 1
	}
	return approx.FastExp(n * approx.FastLog(t))
}
