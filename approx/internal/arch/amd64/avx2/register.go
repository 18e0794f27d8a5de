//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-fastexp/approx/internal/arch/registry"
	"github.com/cwbudde/algo-fastexp/approx/internal/expkernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "avx2",
		SIMDLevel:  cpu.SIMDAVX2,
		Priority:   20,
		Lanes:      8,
		PolyBlock:  polyBlock,
		TableBlock: tableBlock,
	})
}

// polyBlock is an 8-lane kernel selected for AVX2-capable CPUs.
// TODO: replace with an explicit AVX2 asm kernel using VPGATHERDD for the
// table path.
func polyBlock(dst, src []float32) {
	i := 0
	n := len(src)
	for ; i+7 < n; i += 8 {
		*(*[8]float32)(dst[i:]) = expkernel.Poly8(*(*[8]float32)(src[i:]))
	}

	if i+3 < n {
		*(*[4]float32)(dst[i:]) = expkernel.Poly4(*(*[4]float32)(src[i:]))
		i += 4
	}

	for ; i < n; i++ {
		dst[i] = expkernel.Poly(src[i])
	}
}

func tableBlock(dst, src []float32, p *expkernel.Params) {
	i := 0
	n := len(src)
	for ; i+7 < n; i += 8 {
		*(*[8]float32)(dst[i:]) = expkernel.Table8(*(*[8]float32)(src[i:]), p)
	}

	if i+3 < n {
		*(*[4]float32)(dst[i:]) = expkernel.Table4(*(*[4]float32)(src[i:]), p)
		i += 4
	}

	for ; i < n; i++ {
		dst[i] = expkernel.Table(src[i], p)
	}
}
