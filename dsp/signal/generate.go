// Package signal generates the driver series used to probe lag-response
// models: impulses, steps, constants and seeded white noise.
package signal

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownProbe is returned for probe names ParseProbe does not know.
var ErrUnknownProbe = errors.New("signal: unknown probe")

// Probe names a driver series shape.
type Probe int

const (
	// ProbeStep is zero for the first sample and one afterwards, so the
	// response shows the running integral of the kernel.
	ProbeStep Probe = iota
	// ProbeImpulse is one at the first sample; the response is the kernel.
	ProbeImpulse
	// ProbeOnes is one everywhere.
	ProbeOnes
	// ProbeNoise is seeded white noise in [-1, 1].
	ProbeNoise
)

var probeNames = [...]string{"step", "impulse", "ones", "noise"}

// String returns the probe's configuration name.
func (p Probe) String() string {
	if p < 0 || int(p) >= len(probeNames) {
		return fmt.Sprintf("Probe(%d)", int(p))
	}
	return probeNames[p]
}

// ParseProbe maps a probe name to a Probe.
func ParseProbe(name string) (Probe, error) {
	for i, n := range probeNames {
		if n == name {
			return Probe(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProbe, name)
}

// Generator creates deterministic probe signals.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a signal generator. The default seed is 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate returns samples of the given probe.
func (g *Generator) Generate(p Probe, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("probe samples must be > 0: %d", samples)
	}

	switch p {
	case ProbeStep:
		return Step(samples, 1), nil
	case ProbeImpulse:
		return Impulse(samples, 0), nil
	case ProbeOnes:
		return DC(1, samples), nil
	case ProbeNoise:
		return g.WhiteNoise(1, samples)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProbe, p)
	}
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse returns a unit impulse at pos. Positions outside the signal give
// all zeros.
func Impulse(samples, pos int) []float64 {
	out := make([]float64, samples)
	if pos >= 0 && pos < samples {
		out[pos] = 1
	}
	return out
}

// Step returns zeros before pos and ones from pos on.
func Step(samples, pos int) []float64 {
	out := make([]float64, samples)
	for i := max(pos, 0); i < samples; i++ {
		out[i] = 1
	}
	return out
}

// DC returns a constant signal.
func DC(value float64, samples int) []float64 {
	out := make([]float64, samples)
	for i := range out {
		out[i] = value
	}
	return out
}
