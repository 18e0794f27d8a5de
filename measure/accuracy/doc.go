// Package accuracy measures how closely an exponential approximation tracks a
// reference exponential over a sampled domain.
//
// Samples are evenly spaced over [lo, hi). For each sample the relative error
// |ref - approx| / ref is computed in float64 and folded into a [Report]
// holding the average, minimum and maximum.
//
// # Usage
//
//	r, err := accuracy.Validate(polyexp.Exp, -30, 30, 10000)
//	r4, err := accuracy.Validate4(polyexp.Exp4, -30, 30, 10000)
//
// Batched validators evaluate the approximation in groups of their lane width
// but aggregate per element exactly like [Validate], so a lane-consistent
// approximation yields the same report through every entry point.
//
// Choosing a domain where the reference is non-zero is the caller's job.
package accuracy
