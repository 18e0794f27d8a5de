package expkernel

import (
	"math"
	"math/bits"

	"github.com/cwbudde/algo-fastexp/approx/bitcast"
)

// magic is 1.5*2^23. Adding it to a float of magnitude below 2^22 leaves the
// rounded integer part in the low mantissa bits.
const magic float32 = 1.5 * (1 << 23)

// MaxShift is the widest table for which the exponent reconstruction in Table
// stays exact in 32 bits: the bits of magic shifted by 23-s must fall off
// the top of the word.
const MaxShift = 13

// Params carries a mantissa table and the constants derived from its size.
type Params struct {
	Shift     uint32
	Mask      uint32
	Bias      uint32  // exponent bias pre-shifted by Shift
	Scale     float32 // 2^Shift / ln2
	InvScale  float32 // ln2 / 2^Shift
	Mantissas []uint32
}

// NewParams derives the kernel constants for mantissas. len(mantissas) must
// be a power of two no larger than 2^MaxShift; callers validate this.
func NewParams(mantissas []uint32) Params {
	n := len(mantissas)
	shift := uint32(bits.TrailingZeros(uint(n)))

	return Params{
		Shift:     shift,
		Mask:      uint32(n - 1),
		Bias:      bitcast.ExponentBias << shift,
		Scale:     float32(float64(n) / math.Ln2),
		InvScale:  float32(math.Ln2 / float64(n)),
		Mantissas: mantissas,
	}
}

// Table approximates e^x as 2^(k/n) * (1 + r), where k = round(n*x/ln2) is
// split into an exponent and a table index and r is the first-order
// remainder.
func Table(x float32, p *Params) float32 {
	t := x*p.Scale + magic
	idx := bitcast.Bits(t)
	r := x - (t-magic)*p.InvScale

	u := ((idx + p.Bias) >> p.Shift) << bitcast.MantissaBits
	base := bitcast.Float(u | p.Mantissas[idx&p.Mask])

	return (1 + r) * base
}

// Table4 applies Table to each of four lanes.
func Table4(x [4]float32, p *Params) (y [4]float32) {
	for i, v := range x {
		y[i] = Table(v, p)
	}

	return y
}

// Table8 applies Table to each of eight lanes.
func Table8(x [8]float32, p *Params) (y [8]float32) {
	for i, v := range x {
		y[i] = Table(v, p)
	}

	return y
}
