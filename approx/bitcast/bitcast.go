// Package bitcast reinterprets single-precision floats as their raw IEEE-754
// bit patterns and back.
//
// The conversions are bit-exact: no rounding, no numeric conversion. They are
// thin wrappers over [math.Float32bits] and [math.Float32frombits] that give
// the exponential kernels a vocabulary for the fields they manipulate.
package bitcast

import "math"

// IEEE-754 single-precision field layout.
const (
	MantissaBits = 23
	ExponentBias = 127

	SignMask     uint32 = 1 << 31
	ExponentMask uint32 = 0xFF << MantissaBits // 0x7F800000
	MantissaMask uint32 = 1<<MantissaBits - 1  // 0x007FFFFF

	// OneBits is the bit pattern of 1.0.
	OneBits uint32 = ExponentBias << MantissaBits
)

// Bits returns the bit pattern of f.
func Bits(f float32) uint32 {
	return math.Float32bits(f)
}

// Float returns the float whose bit pattern is b.
func Float(b uint32) float32 {
	return math.Float32frombits(b)
}

// Mantissa returns the 23-bit fraction field of f.
func Mantissa(f float32) uint32 {
	return math.Float32bits(f) & MantissaMask
}

// Exponent returns the biased 8-bit exponent field of f.
func Exponent(f float32) uint32 {
	return (math.Float32bits(f) & ExponentMask) >> MantissaBits
}
