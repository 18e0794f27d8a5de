package generic

import (
	"github.com/cwbudde/algo-fastexp/approx/internal/arch/registry"
	"github.com/cwbudde/algo-fastexp/approx/internal/expkernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		Lanes:      1,
		PolyBlock:  polyBlock,
		TableBlock: tableBlock,
	})
}

func polyBlock(dst, src []float32) {
	for i, x := range src {
		dst[i] = expkernel.Poly(x)
	}
}

func tableBlock(dst, src []float32, p *expkernel.Params) {
	for i, x := range src {
		dst[i] = expkernel.Table(x, p)
	}
}
