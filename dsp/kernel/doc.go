// Package kernel builds finite power-law response kernels.
//
// A kernel g[i] = a * t[i]^n is evaluated on the time axis t = 1, 2, ..., N
// (never 0, so negative exponents stay finite) and truncated where its value
// first drops to max(g)/trimRatio or below:
//
//	g := kernel.PowerLaw(len(input), a, n, trimRatio)
//
// A match at the very first sample does not truncate; the kernel keeps all N
// samples in that case, as it does when nothing matches.
//
// Ill-posed parameters are not rejected. Whatever math.Pow yields, including
// NaN and Inf, flows into the kernel unchanged.
//
// Building with the fastmath tag evaluates the power as exp(n*ln t) using
// algo-approx instead of math.Pow.
package kernel
