package kernel

import "math"

// PowerLaw returns a*t^n for t = 1..length, truncated by trimRatio.
// The result has between 1 and length samples; length <= 0 yields an empty
// kernel.
func PowerLaw(length int, a, n, trimRatio float64) []float64 {
	g := Raw(length, a, n)
	return g[:TruncationIndex(g, trimRatio)]
}

// Raw returns the untruncated kernel a*t^n for t = 1..length.
func Raw(length int, a, n float64) []float64 {
	if length <= 0 {
		return []float64{}
	}

	g := make([]float64, length)
	for i := range g {
		g[i] = a * power(float64(i+1), n)
	}
	return g
}

// TruncationIndex returns how many leading samples of g to keep.
//
// It scans for the first index whose value is <= Max(g)/trimRatio. A match at
// index 0, or no match at all, keeps the whole kernel.
func TruncationIndex(g []float64, trimRatio float64) int {
	threshold := Max(g) / trimRatio
	for i, v := range g {
		if v <= threshold {
			if i == 0 {
				break
			}
			return i
		}
	}
	return len(g)
}

// Max returns the largest value in g, or NaN for an empty kernel.
// The scan starts from g[0] and only replaces it with strictly greater values,
// so a leading NaN propagates into the threshold.
func Max(g []float64) float64 {
	if len(g) == 0 {
		return math.NaN()
	}
	m := g[0]
	for _, v := range g[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
