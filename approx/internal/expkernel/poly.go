package expkernel

import "github.com/cwbudde/algo-fastexp/approx/bitcast"

const (
	// polyScale is 2^23/ln2: one unit of x moves the bit pattern by the
	// amount that multiplies the float value by e.
	polyScale float32 = 12102203.1615614
	// polyBias is the bit pattern of 1.0.
	polyBias float32 = 1065353216

	// polyCeil is the bit pattern of +Inf, the top of the non-negative
	// normal range.
	polyCeil  float32 = 2139095040
	polyFloor float32 = 0

	pc0 float32 = 0.509964287281036376953125
	pc1 float32 = 0.3120158612728118896484375
	pc2 float32 = 0.1666135489940643310546875
	pc3 float32 = -2.12528370320796966552734375e-3
	pc4 float32 = 1.3534179888665676116943359375e-2
)

// Poly approximates e^x by mapping x into the float bit-pattern domain and
// correcting the fractional part with a degree-4 polynomial.
//
// Relative error is bounded by about 1e-5 for normal outputs. NaN inputs
// give undefined results.
func Poly(x float32) float32 {
	v := float32(polyScale*x) + polyBias
	if RangeCheck {
		v = min(max(v, polyFloor), polyCeil)
	}

	i := uint32(int32(v))
	xu := bitcast.Float(i & bitcast.ExponentMask)
	b := bitcast.Float(i&bitcast.MantissaMask | bitcast.OneBits)

	return xu * (pc0 + b*(pc1+b*(pc2+b*(pc3+b*pc4))))
}

// Poly4 applies Poly to each of four lanes.
func Poly4(x [4]float32) (y [4]float32) {
	for i, v := range x {
		y[i] = Poly(v)
	}

	return y
}

// Poly8 applies Poly to each of eight lanes.
func Poly8(x [8]float32) (y [8]float32) {
	for i, v := range x {
		y[i] = Poly(v)
	}

	return y
}
