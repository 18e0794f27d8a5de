package tableexp

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-fastexp/approx/internal/expkernel"
)

var (
	ErrUnsupportedTableSize = errors.New("tableexp: unsupported table size")
	ErrTableLength          = errors.New("tableexp: table length must be a power of two between 2 and 8192")
	ErrTableEntry           = errors.New("tableexp: invalid table entry")
)

// TableSize selects one of the compiled-in tables by its shift s; the table
// holds 2^s entries.
type TableSize int

const (
	Size128  TableSize = 7  // 128 entries, 512 B
	Size256  TableSize = 8  // 256 entries, 1 KB
	Size1024 TableSize = 10 // 1024 entries, 4 KB
)

// ParseTableSize maps a shift to a TableSize.
func ParseTableSize(shift int) (TableSize, error) {
	s := TableSize(shift)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: shift %d", ErrUnsupportedTableSize, shift)
	}

	return s, nil
}

// Valid reports whether s names a compiled-in table.
func (s TableSize) Valid() bool {
	switch s {
	case Size128, Size256, Size1024:
		return true
	default:
		return false
	}
}

// Len returns the number of table entries, 2^s.
func (s TableSize) Len() int {
	return 1 << s
}

func (s TableSize) String() string {
	if !s.Valid() {
		return "TableSize(" + strconv.Itoa(int(s)) + ")"
	}

	return strconv.Itoa(s.Len())
}

// Table is an immutable mantissa correction table with its derived shift,
// mask and scale constants.
type Table struct {
	p expkernel.Params
}

var (
	table128  = &Table{p: expkernel.NewParams(mantissas7[:])}
	table256  = &Table{p: expkernel.NewParams(mantissas8[:])}
	table1024 = &Table{p: expkernel.NewParams(mantissas10[:])}
)

// TableFor returns the compiled-in table for size. It panics if size is not
// valid.
func TableFor(size TableSize) *Table {
	switch size {
	case Size128:
		return table128
	case Size256:
		return table256
	case Size1024:
		return table1024
	default:
		panic(fmt.Sprintf("tableexp: unsupported table size %d", int(size)))
	}
}

// NewTable builds a Table from generator output (see approx/tablegen).
// entries is copied. Its length must be a power of two in [2, 8192], entry 0
// must be zero and every entry must fit the 23-bit mantissa field.
func NewTable(entries []uint32) (*Table, error) {
	n := len(entries)
	if n < 2 || n > 1<<expkernel.MaxShift || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrTableLength, n)
	}

	if entries[0] != 0 {
		return nil, fmt.Errorf("%w: entry 0 is %#x, want 0", ErrTableEntry, entries[0])
	}

	for i, v := range entries {
		if v >= 1<<23 {
			return nil, fmt.Errorf("%w: entry %d (%#x) exceeds 23 bits", ErrTableEntry, i, v)
		}
	}

	own := make([]uint32, n)
	copy(own, entries)

	return &Table{p: expkernel.NewParams(own)}, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.p.Mantissas)
}

// Shift returns log2(Len()).
func (t *Table) Shift() int {
	return int(t.p.Shift)
}

// Entry returns the mantissa bits of 2^(i/Len()).
func (t *Table) Entry(i int) uint32 {
	return t.p.Mantissas[i]
}
