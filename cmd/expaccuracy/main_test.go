package main

import (
	"bytes"
	"strings"
	"testing"

	"sigs.k8s.io/yaml"
)

func names(vs []variant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.name
	}
	return out
}

func TestSelectVariants(t *testing.T) {
	if got := selectVariants(nil); len(got) != len(registry) {
		t.Fatalf("no args: got %d variants, want all %d", len(got), len(registry))
	}

	got := names(selectVariants([]string{"Table1024"}))
	want := []string{"table1024", "table1024x4", "table1024x8", "table1024block"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := selectVariants([]string{"nope"}); len(got) != 0 {
		t.Fatalf("unknown name matched %v", names(got))
	}
}

// Batched variants of one method must report exactly what the scalar
// variant reports.
func TestBatchedVariantsAgree(t *testing.T) {
	results, err := evaluate(registry, -10, 10, 999)
	if err != nil {
		t.Fatal(err)
	}

	byName := make(map[string]result, len(results))
	for _, r := range results {
		byName[r.Variant] = r
	}

	for _, base := range []string{"poly", "table128", "table256", "table1024"} {
		want := byName[base].Report
		for _, suffix := range []string{"x4", "x8", "block"} {
			r, ok := byName[base+suffix]
			if !ok {
				continue
			}
			if r.Report != want {
				t.Errorf("%s%s: %+v, want %+v", base, suffix, r.Report, want)
			}
		}
	}
}

func TestEvaluateRejectsBadDomain(t *testing.T) {
	if _, err := evaluate(registry[:1], 1, -1, 10); err == nil {
		t.Fatal("expected error for reversed domain")
	}
}

func TestRenderText(t *testing.T) {
	results, err := evaluate(selectVariants([]string{"poly"}), -1, 1, 100)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := render(&buf, "text", results); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "over [-1, 1), 100 samples") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "polyblock") {
		t.Errorf("missing row:\n%s", out)
	}
}

func TestRenderYAML(t *testing.T) {
	results, err := evaluate(selectVariants([]string{"table256"}), -1, 1, 64)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := render(&buf, "yaml", results); err != nil {
		t.Fatal(err)
	}

	var decoded []result
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(decoded) != len(results) || decoded[0].Variant != "table256" || decoded[0].Samples != 64 {
		t.Fatalf("decoded %+v", decoded)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := render(&bytes.Buffer{}, "xml", nil); err == nil {
		t.Fatal("expected error")
	}
}
