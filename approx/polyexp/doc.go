// Package polyexp provides a branchless single-precision approximation of e^x
// that works directly on IEEE-754 bit patterns.
//
// Adding to the raw bits of a float multiplies its value by a power of two,
// so 2^23/ln2 * x + bits(1.0), truncated to an integer, is a coarse e^x in
// bit form. Its exponent field is kept as is and its fraction field is
// refined by a degree-4 polynomial.
//
// # Accuracy Characteristics
//
// Relative error is bounded by ~1e-5 for normal outputs; over [-30, 30] the
// average is ~2.5e-6 and the max ~9.6e-6. NaN inputs give undefined results.
//
// # Range Checking
//
// By default the intermediate is clamped so out-of-range inputs saturate to
// 0 or +Inf. Building with the norangecheck tag removes the clamp for extra
// throughput; inputs must then stay within about [-88, 88].
//
//	go build -tags norangecheck ./...
package polyexp
