package accuracy

import (
	"errors"
	"math"
	"testing"
)

func exactExp(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

func TestValidateConstantError(t *testing.T) {
	// reference 4, approximation 3 -> relative error exactly 0.25.
	ref := WithReference(func(float64) float64 { return 4 })
	r, err := Validate(func(float32) float32 { return 3 }, -1, 1, 100, ref)
	if err != nil {
		t.Fatal(err)
	}

	if r.Samples != 100 || r.Lo != -1 || r.Hi != 1 {
		t.Fatalf("unexpected header: %+v", r)
	}
	if r.Average != 0.25 || r.Min != 0.25 || r.Max != 0.25 {
		t.Fatalf("got %+v, want all 0.25", r)
	}
}

func TestValidateFloat32Rounding(t *testing.T) {
	// Rounding math.Exp to float32 costs at most half an ulp.
	r, err := Validate(exactExp, -30, 30, 5000)
	if err != nil {
		t.Fatal(err)
	}

	if r.Max > 6e-8 {
		t.Fatalf("max %g exceeds float32 rounding", r.Max)
	}
	if r.Min > r.Average || r.Average > r.Max {
		t.Fatalf("inconsistent report %+v", r)
	}
}

func TestValidateSamplesHalfOpenDomain(t *testing.T) {
	var seen []float32
	_, err := Validate(func(x float32) float32 {
		seen = append(seen, x)
		return exactExp(x)
	}, 0, 1, 4)
	if err != nil {
		t.Fatal(err)
	}

	want := []float32{0, 0.25, 0.5, 0.75}
	if len(seen) != len(want) {
		t.Fatalf("got %d samples, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestSampleStaysBelowHi(t *testing.T) {
	oneULP := math.Nextafter32(1, 2)
	below30 := math.Nextafter32(30, -30)

	tests := []struct {
		name   string
		lo, hi float32
		i, n   int
		want   float32
	}{
		{"one ulp wide, first", 1, oneULP, 0, 4, 1},
		{"one ulp wide, last", 1, oneULP, 3, 4, 1},
		{"large n, last", -30, 30, 99_999_999, 100_000_000, below30},
		{"exact grid", 0, 1, 3, 4, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(tt.lo, tt.hi, tt.i, tt.n)
			if got != tt.want {
				t.Fatalf("Sample(%v, %v, %d, %d) = %v, want %v", tt.lo, tt.hi, tt.i, tt.n, got, tt.want)
			}
			if got < tt.lo || got >= tt.hi {
				t.Fatalf("Sample = %v outside [%v, %v)", got, tt.lo, tt.hi)
			}
		})
	}
}

func TestValidateNarrowDomainNeverEvaluatesHi(t *testing.T) {
	lo := float32(1)
	hi := math.Nextafter32(lo, 2)

	r, err := Validate(func(x float32) float32 {
		if x >= hi {
			t.Fatalf("evaluated %v, outside [%v, %v)", x, lo, hi)
		}
		return exactExp(x)
	}, lo, hi, 4)
	if err != nil {
		t.Fatal(err)
	}

	if r.Samples != 4 {
		t.Fatalf("Samples = %d, want 4", r.Samples)
	}
}

func TestBatchedValidatorsMatchScalar(t *testing.T) {
	// Deliberately lossy so errors vary sample to sample.
	lossy := func(x float32) float32 {
		y := exactExp(x)
		return math.Float32frombits(math.Float32bits(y) &^ 0xFF)
	}
	lossy4 := func(x [4]float32) (y [4]float32) {
		for i, v := range x {
			y[i] = lossy(v)
		}
		return y
	}
	lossy8 := func(x [8]float32) (y [8]float32) {
		for i, v := range x {
			y[i] = lossy(v)
		}
		return y
	}
	lossyBlock := func(dst, src []float32) {
		for i, v := range src {
			dst[i] = lossy(v)
		}
	}

	// 1003 is not a multiple of any batch width and spans several chunks.
	const n = 1003
	opts := []Option{WithChunkSize(100)}

	want, err := Validate(lossy, -5, 5, n, opts...)
	if err != nil {
		t.Fatal(err)
	}

	for name, run := range map[string]func() (Report, error){
		"x4":    func() (Report, error) { return Validate4(lossy4, -5, 5, n, opts...) },
		"x8":    func() (Report, error) { return Validate8(lossy8, -5, 5, n, opts...) },
		"block": func() (Report, error) { return ValidateBlock(lossyBlock, -5, 5, n, opts...) },
		"x8-1chunk": func() (Report, error) {
			return Validate8(lossy8, -5, 5, n)
		},
	} {
		got, err := run()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: got %+v, want %+v", name, got, want)
		}
	}
}

func TestValidateErrors(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name   string
		lo, hi float32
		n      int
		want   error
	}{
		{"empty", 1, 1, 10, ErrInvalidRange},
		{"reversed", 2, 1, 10, ErrInvalidRange},
		{"nan", nan, 1, 10, ErrInvalidRange},
		{"inf", -1, inf, 10, ErrInvalidRange},
		{"zero-count", -1, 1, 0, ErrInvalidSampleCount},
		{"negative-count", -1, 1, -4, ErrInvalidSampleCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(exactExp, tt.lo, tt.hi, tt.n)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	if r := c.Result(); r != (Report{}) {
		t.Fatalf("empty collector: %+v", r)
	}

	c.Update([]float64{1, 2, 4}, []float64{1, 1.5, 5})
	c.Update([]float64{10}, []float64{9})

	r := c.Result()
	if r.Samples != 4 {
		t.Fatalf("Samples = %d", r.Samples)
	}
	if r.Min != 0 || r.Max != 0.25 {
		t.Fatalf("min/max = %v/%v", r.Min, r.Max)
	}
	if want := (0 + 0.25 + 0.25 + 0.1) / 4; math.Abs(r.Average-want) > 1e-15 {
		t.Fatalf("Average = %v, want %v", r.Average, want)
	}

	c.Reset()
	if r := c.Result(); r.Samples != 0 {
		t.Fatalf("after Reset: %+v", r)
	}
}

func TestCollectorDividesByReference(t *testing.T) {
	// 49 * (1/49) rounds below 1; the quotient is exact.
	c := NewCollector()
	c.Update([]float64{49, 3}, []float64{0, 2})

	r := c.Result()
	if r.Max != 1 {
		t.Fatalf("Max = %v, want 1", r.Max)
	}
	if want := 1.0 / 3; r.Min != want {
		t.Fatalf("Min = %v, want %v", r.Min, want)
	}
}

func TestCollectorPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewCollector().Update([]float64{1}, nil)
}

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithChunkSize(10), nil, WithReference(nil))
	if cfg.ChunkSize != 16 {
		t.Errorf("ChunkSize = %d, want 16", cfg.ChunkSize)
	}
	if cfg.Reference == nil {
		t.Error("nil reference must be ignored")
	}

	if cfg := ApplyOptions(WithChunkSize(-1)); cfg.ChunkSize != defaultChunkSize {
		t.Errorf("ChunkSize = %d, want default", cfg.ChunkSize)
	}
}
