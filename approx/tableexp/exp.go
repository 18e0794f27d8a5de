package tableexp

import (
	"github.com/cwbudde/algo-fastexp/approx/internal/dispatch"
	"github.com/cwbudde/algo-fastexp/approx/internal/expkernel"
)

// Exp returns the approximation of e^x using t.
func (t *Table) Exp(x float32) float32 {
	return expkernel.Table(x, &t.p)
}

// Exp4 approximates e^x for four independent lanes. Each lane equals
// t.Exp of the same input.
func (t *Table) Exp4(x [4]float32) [4]float32 {
	return expkernel.Table4(x, &t.p)
}

// Exp8 approximates e^x for eight independent lanes.
func (t *Table) Exp8(x [8]float32) [8]float32 {
	return expkernel.Table8(x, &t.p)
}

// ExpBlock writes the approximation of e^src[i] to dst[i] using the widest
// lane kernel the CPU supports. Panics if the lengths differ.
func (t *Table) ExpBlock(dst, src []float32) {
	if len(dst) != len(src) {
		panic("tableexp: slice length mismatch")
	}

	dispatch.Kernel().TableBlock(dst, src, &t.p)
}

// Exp approximates e^x with the compiled-in table selected by size.
func Exp(x float32, size TableSize) float32 {
	return TableFor(size).Exp(x)
}

// Exp4 approximates e^x for four lanes with the table selected by size.
func Exp4(x [4]float32, size TableSize) [4]float32 {
	return TableFor(size).Exp4(x)
}

// Exp8 approximates e^x for eight lanes with the table selected by size.
func Exp8(x [8]float32, size TableSize) [8]float32 {
	return TableFor(size).Exp8(x)
}

// ExpBlock approximates e^x for every element of src with the table selected
// by size.
func ExpBlock(dst, src []float32, size TableSize) {
	TableFor(size).ExpBlock(dst, src)
}
