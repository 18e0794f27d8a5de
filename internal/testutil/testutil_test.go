package testutil

import (
	"math"
	"testing"
)

func TestDeterministicInputs(t *testing.T) {
	a := DeterministicInputs(7, 100, -2, 3)
	b := DeterministicInputs(7, 100, -2, 3)
	RequireBitsEqual(t, a, b)

	for i, v := range a {
		if v < -2 || v >= 3 {
			t.Fatalf("index %d: %v outside [-2, 3)", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	RequireBitsEqual(t, Ramp(4, 0, 1), []float32{0, 0.25, 0.5, 0.75})
}

func TestRelErr(t *testing.T) {
	if e := RelErr(0, 1); e != 0 {
		t.Fatalf("RelErr(0, 1) = %v", e)
	}
	if e := RelErr(1, float32(math.E)); e > 6e-8 {
		t.Fatalf("RelErr(1, e) = %v", e)
	}
}
