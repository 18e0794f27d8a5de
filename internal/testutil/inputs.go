// Package testutil holds input generators and comparison helpers shared by
// the approximation tests.
package testutil

import "math/rand"

// DeterministicInputs returns n uniform samples in [lo, hi) drawn from a
// fixed seed.
func DeterministicInputs(seed int64, n int, lo, hi float32) []float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float32, n)
	for i := range out {
		out[i] = lo + (hi-lo)*rng.Float32()
	}
	return out
}

// Ramp returns n evenly spaced samples in [lo, hi).
func Ramp(n int, lo, hi float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float32(i)/float32(n)
	}
	return out
}
