package polyexp

import (
	"github.com/cwbudde/algo-fastexp/approx/internal/dispatch"
	"github.com/cwbudde/algo-fastexp/approx/internal/expkernel"
)

// RangeCheck reports whether out-of-range inputs saturate. It is false when
// built with the norangecheck tag.
const RangeCheck = expkernel.RangeCheck

// Exp returns an approximation of e^x.
func Exp(x float32) float32 {
	return expkernel.Poly(x)
}

// Exp4 approximates e^x for four independent lanes. Lane i equals Exp(x[i])
// exactly.
func Exp4(x [4]float32) [4]float32 {
	return expkernel.Poly4(x)
}

// Exp8 approximates e^x for eight independent lanes.
func Exp8(x [8]float32) [8]float32 {
	return expkernel.Poly8(x)
}

// ExpBlock writes the approximation of e^src[i] to dst[i].
//
// The lane width is chosen from CPU features on first use:
//   - AVX2 on x86-64: 8 lanes per step
//   - SSE2 on x86-64, NEON on ARM64: 4 lanes per step
//   - Generic scalar loop otherwise, or with the purego tag
//
// Results are identical for every choice. Panics if the lengths differ.
func ExpBlock(dst, src []float32) {
	if len(dst) != len(src) {
		panic("polyexp: slice length mismatch")
	}

	dispatch.Kernel().PolyBlock(dst, src)
}
