package tableexp

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fastexp/approx/tablegen"
	"github.com/google/go-cmp/cmp"
)

func TestCompiledTablesMatchGenerator(t *testing.T) {
	for _, size := range []TableSize{Size128, Size256, Size1024} {
		t.Run(size.String(), func(t *testing.T) {
			tab := TableFor(size)
			if tab.Len() != size.Len() || tab.Shift() != int(size) {
				t.Fatalf("len/shift = %d/%d", tab.Len(), tab.Shift())
			}

			got := make([]uint32, tab.Len())
			for i := range got {
				got[i] = tab.Entry(i)
			}

			if diff := cmp.Diff(tablegen.Generate(int(size)), got); diff != "" {
				t.Fatalf("compiled table differs from generator (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableSize(t *testing.T) {
	tests := []struct {
		shift   int
		valid   bool
		len     int
		str     string
		wantErr bool
	}{
		{7, true, 128, "128", false},
		{8, true, 256, "256", false},
		{10, true, 1024, "1024", false},
		{9, false, 512, "TableSize(9)", true},
		{0, false, 1, "TableSize(0)", true},
	}
	for _, tt := range tests {
		s := TableSize(tt.shift)
		if s.Valid() != tt.valid || s.Len() != tt.len || s.String() != tt.str {
			t.Errorf("TableSize(%d): valid=%v len=%d str=%q", tt.shift, s.Valid(), s.Len(), s.String())
		}

		got, err := ParseTableSize(tt.shift)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedTableSize) {
				t.Errorf("ParseTableSize(%d): err = %v", tt.shift, err)
			}
			continue
		}
		if err != nil || got != s {
			t.Errorf("ParseTableSize(%d) = %v, %v", tt.shift, got, err)
		}
	}
}

func TestTableForPanicsOnUnknownSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	TableFor(TableSize(9))
}

func TestNewTable(t *testing.T) {
	entries := tablegen.Generate(9)
	tab, err := NewTable(entries)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 512 || tab.Shift() != 9 {
		t.Fatalf("len/shift = %d/%d", tab.Len(), tab.Shift())
	}

	// The table owns its entries.
	entries[1] = 0x7FFFFF
	if tab.Entry(1) == 0x7FFFFF {
		t.Fatal("NewTable did not copy entries")
	}
}

func TestNewTableErrors(t *testing.T) {
	tooWide := tablegen.Generate(14)
	badFirst := tablegen.Generate(4)
	badFirst[0] = 1
	badEntry := tablegen.Generate(4)
	badEntry[3] = 1 << 23

	tests := []struct {
		name    string
		entries []uint32
		want    error
	}{
		{"nil", nil, ErrTableLength},
		{"one", []uint32{0}, ErrTableLength},
		{"not-pow2", make([]uint32, 96), ErrTableLength},
		{"too-wide", tooWide, ErrTableLength},
		{"first-nonzero", badFirst, ErrTableEntry},
		{"entry-overflow", badEntry, ErrTableEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.entries); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}
