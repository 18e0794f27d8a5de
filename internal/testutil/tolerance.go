package testutil

import (
	"math"
	"testing"
)

// RelErr returns |e^x - got| / e^x with the reference computed in float64.
func RelErr(x, got float32) float64 {
	want := math.Exp(float64(x))
	return math.Abs(want-float64(got)) / want
}

// RequireBitsEqual fails t if got and want differ in length or if any element
// pair differs in its bit pattern.
func RequireBitsEqual(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("index %d: got %v (%#08x), want %v (%#08x)",
				i, got[i], math.Float32bits(got[i]), want[i], math.Float32bits(want[i]))
		}
	}
}
