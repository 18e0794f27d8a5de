// Command exptablegen prints the mantissa correction table used by the
// table-driven exponential as a Go array literal.
//
// Usage:
//
//	exptablegen [flags] [shift]
//
// shift selects a table of 2^shift entries (default 10). Values above 14 are
// clamped to 14.
//
// Examples:
//
//	exptablegen 8
//	exptablegen -name mantissas10 -pkg tableexp -o table1024_gen.go 10
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-fastexp/approx/tablegen"
)

func main() {
	name := flag.String("name", "expTable", "identifier of the generated array")
	pkg := flag.String("pkg", "", "emit a complete Go file for this package instead of a bare declaration")
	out := flag.String("o", "", "write to file instead of stdout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: exptablegen [flags] [shift]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the 2^shift-entry mantissa table for the table-driven exp.\n")
		fmt.Fprintf(os.Stderr, "shift defaults to %d and is clamped to %d.\n\n", tablegen.DefaultShift, tablegen.MaxShift)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	shift, err := parseShift(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*out, *name, *pkg, shift); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, name, pkg string, shift int) error {
	if path == "" {
		return emit(os.Stdout, name, pkg, shift)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := emit(f, name, pkg, shift); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// parseShift reads the optional positional shift. Values above the
// generator's ceiling are clamped, not rejected.
func parseShift(args []string) (int, error) {
	if len(args) == 0 {
		return tablegen.DefaultShift, nil
	}

	if len(args) > 1 {
		return 0, fmt.Errorf("expected at most one argument, got %d", len(args))
	}

	s, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid shift %q: %w", args[0], err)
	}

	return tablegen.ClampShift(s), nil
}

func emit(w io.Writer, name, pkg string, shift int) error {
	entries := tablegen.Generate(shift)
	if pkg == "" {
		return tablegen.Write(w, name, entries)
	}

	return tablegen.WriteFile(w, pkg, tablegen.Decl{Name: name, Entries: entries})
}
