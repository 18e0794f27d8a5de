//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-fastexp/approx/internal/arch/registry"
	"github.com/cwbudde/algo-fastexp/approx/internal/expkernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "neon",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   15,
		Lanes:      4,
		PolyBlock:  polyBlock,
		TableBlock: tableBlock,
	})
}

func polyBlock(dst, src []float32) {
	i := 0
	n := len(src)
	for ; i+3 < n; i += 4 {
		*(*[4]float32)(dst[i:]) = expkernel.Poly4(*(*[4]float32)(src[i:]))
	}

	for ; i < n; i++ {
		dst[i] = expkernel.Poly(src[i])
	}
}

func tableBlock(dst, src []float32, p *expkernel.Params) {
	i := 0
	n := len(src)
	for ; i+3 < n; i += 4 {
		*(*[4]float32)(dst[i:]) = expkernel.Table4(*(*[4]float32)(src[i:]), p)
	}

	for ; i < n; i++ {
		dst[i] = expkernel.Table(src[i], p)
	}
}
