package kernel

import "github.com/cwbudde/algo-vecmath"

// Stats summarizes a built kernel.
type Stats struct {
	// Length is the number of samples kept after truncation.
	Length int
	// RawLength is the length of the time axis before truncation.
	RawLength int
	// Peak is the largest kernel value and PeakIndex its first position.
	Peak      float64
	PeakIndex int
	// Area is the sum of all kept samples, i.e. the steady-state gain of the
	// response to a unit step once the step is longer than the kernel.
	Area float64
	// Threshold is the truncation level Max(raw)/trimRatio.
	Threshold float64
}

// Truncated reports whether the kernel was cut short of its time axis.
func (s Stats) Truncated() bool {
	return s.Length < s.RawLength
}

// Describe builds the kernel for the given parameters and summarizes it.
func Describe(length int, a, n, trimRatio float64) (Stats, []float64) {
	raw := Raw(length, a, n)
	g := raw[:TruncationIndex(raw, trimRatio)]

	s := Stats{
		Length:    len(g),
		RawLength: len(raw),
		Peak:      Max(g),
		PeakIndex: -1,
		Area:      vecmath.Sum(g),
		Threshold: Max(raw) / trimRatio,
	}
	for i, v := range g {
		if v == s.Peak {
			s.PeakIndex = i
			break
		}
	}
	return s, g
}
