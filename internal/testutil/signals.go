package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-lagfit/dsp/signal"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DecayingKernel returns a*(i+1)^-decay, an untruncated power-law kernel on
// the 1-based time axis.
func DecayingKernel(a, decay float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = a * math.Pow(float64(i+1), -decay)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	return signal.DC(value, length)
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
