// Package tablegen computes the mantissa correction tables used by the
// table-driven exponential and renders them as Go source.
//
// Entry i of a table for shift s is the 23-bit fraction field of the
// single-precision value 2^(i/2^s). Tables are generated offline (see
// cmd/exptablegen) and compiled into the approx/tableexp package; nothing
// regenerates them at runtime.
package tablegen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// DefaultShift selects a 1024-entry table.
	DefaultShift = 10

	// MaxShift caps requests at 2^14 entries.
	MaxShift = 14

	valuesPerLine = 4
	mantissaMask  = 1<<23 - 1
)

// ErrInvalidName is returned when a declaration has no identifier.
var ErrInvalidName = errors.New("tablegen: declaration name must not be empty")

// ClampShift limits s to [0, MaxShift].
func ClampShift(s int) int {
	return min(max(s, 0), MaxShift)
}

// Generate returns the 2^s mantissa entries for shift s. Over-large shifts are
// clamped to MaxShift rather than rejected.
func Generate(s int) []uint32 {
	n := 1 << ClampShift(s)
	out := make([]uint32, n)

	for i := range out {
		y := float32(math.Exp2(float64(i) / float64(n)))
		out[i] = math.Float32bits(y) & mantissaMask
	}

	return out
}

// Decl is one named table declaration.
type Decl struct {
	Name    string
	Entries []uint32
}

// Write emits entries as a Go array literal named name, four hexadecimal
// values per line.
func Write(w io.Writer, name string, entries []uint32) error {
	if name == "" {
		return ErrInvalidName
	}

	bw := bufio.NewWriter(w)
	writeDecl(bw, name, entries)

	return bw.Flush()
}

// WriteFile emits a complete generated Go source file for package pkg holding
// the given declarations.
func WriteFile(w io.Writer, pkg string, decls ...Decl) error {
	if pkg == "" {
		return fmt.Errorf("%w: package", ErrInvalidName)
	}

	for _, d := range decls {
		if d.Name == "" {
			return ErrInvalidName
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by exptablegen. DO NOT EDIT.\n\npackage %s\n", pkg)

	for _, d := range decls {
		bw.WriteByte('\n')
		writeDecl(bw, d.Name, d.Entries)
	}

	return bw.Flush()
}

func writeDecl(bw *bufio.Writer, name string, entries []uint32) {
	fmt.Fprintf(bw, "var %s = [%d]uint32{\n", name, len(entries))

	for i, v := range entries {
		if i%valuesPerLine == 0 {
			bw.WriteByte('\t')
		} else {
			bw.WriteByte(' ')
		}

		fmt.Fprintf(bw, "0x%08x,", v)

		if i%valuesPerLine == valuesPerLine-1 || i == len(entries)-1 {
			bw.WriteByte('\n')
		}
	}

	bw.WriteString("}\n")
}
