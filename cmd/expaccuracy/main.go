// Command expaccuracy reports the relative error of every exponential
// approximation variant against math.Exp.
//
// Usage:
//
//	expaccuracy [flags] [variant ...]
//
// Without arguments it reports all variants.
//
// Examples:
//
//	expaccuracy
//	expaccuracy -lo -3 -hi 3 poly table1024
//	expaccuracy -n 100000 -format yaml
//	expaccuracy -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fastexp/measure/accuracy"
	"sigs.k8s.io/yaml"
)

type result struct {
	Variant string `json:"variant"`
	accuracy.Report
}

func main() {
	lo := flag.Float64("lo", -30, "lower bound of the sampled domain (inclusive)")
	hi := flag.Float64("hi", 30, "upper bound of the sampled domain (exclusive)")
	n := flag.Int("n", 10000, "number of samples")
	format := flag.String("format", "text", "output format: text or yaml")
	list := flag.Bool("list", false, "list available variant names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: expaccuracy [flags] [variant ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reports average/min/max relative error of exp approximations.\n")
		fmt.Fprintf(os.Stderr, "A variant name matches itself and every variant it prefixes\n")
		fmt.Fprintf(os.Stderr, "(\"table1024\" selects table1024, table1024x4, ...).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, v := range registry {
			fmt.Println(v.name)
		}
		return
	}

	selected := selectVariants(flag.Args())
	if len(selected) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching variants (use -list to see available)\n")
		os.Exit(1)
	}

	results, err := evaluate(selected, float32(*lo), float32(*hi), *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := render(os.Stdout, *format, results); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func selectVariants(names []string) []variant {
	if len(names) == 0 {
		return registry
	}

	var out []variant
	for _, v := range registry {
		for _, name := range names {
			if strings.HasPrefix(v.name, strings.ToLower(strings.TrimSpace(name))) {
				out = append(out, v)
				break
			}
		}
	}

	return out
}

func evaluate(vs []variant, lo, hi float32, n int) ([]result, error) {
	results := make([]result, 0, len(vs))
	for _, v := range vs {
		r, err := v.run(lo, hi, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.name, err)
		}

		results = append(results, result{Variant: v.name, Report: r})
	}

	return results, nil
}

func render(w io.Writer, format string, results []result) error {
	switch format {
	case "text":
		return renderText(w, results)
	case "yaml":
		out, err := yaml.Marshal(results)
		if err != nil {
			return err
		}

		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderText(w io.Writer, results []result) error {
	if len(results) > 0 {
		r := results[0]
		fmt.Fprintf(w, "Relative error vs math.Exp over [%g, %g), %d samples\n\n", r.Lo, r.Hi, r.Samples)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Variant\tAverage\tMin\tMax\t")
	fmt.Fprintln(tw, "-------\t-------\t---\t---\t")

	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.3e\t%.3e\t%.3e\t\n", r.Variant, r.Average, r.Min, r.Max)
	}

	return tw.Flush()
}
