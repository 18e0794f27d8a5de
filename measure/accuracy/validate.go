package accuracy

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRange       = errors.New("accuracy: domain must be finite with lo < hi")
	ErrInvalidSampleCount = errors.New("accuracy: sample count must be positive")
)

// Func is a scalar exponential approximation.
type Func func(x float32) float32

// Func4 is a 4-lane exponential approximation.
type Func4 func(x [4]float32) [4]float32

// Func8 is an 8-lane exponential approximation.
type Func8 func(x [8]float32) [8]float32

// BlockFunc writes an approximation of e^src[i] to dst[i].
type BlockFunc func(dst, src []float32)

// Validate samples fn at n evenly spaced points in [lo, hi).
func Validate(fn Func, lo, hi float32, n int, opts ...Option) (Report, error) {
	return run(lo, hi, n, 1, func(dst, src []float32) {
		for i, x := range src {
			dst[i] = fn(x)
		}
	}, opts)
}

// Validate4 is Validate for a 4-lane approximation. A final partial group is
// padded with lo and the padding lanes are discarded.
func Validate4(fn Func4, lo, hi float32, n int, opts ...Option) (Report, error) {
	return run(lo, hi, n, 4, func(dst, src []float32) {
		for i := 0; i < len(src); i += 4 {
			*(*[4]float32)(dst[i:]) = fn(*(*[4]float32)(src[i:]))
		}
	}, opts)
}

// Validate8 is Validate for an 8-lane approximation.
func Validate8(fn Func8, lo, hi float32, n int, opts ...Option) (Report, error) {
	return run(lo, hi, n, 8, func(dst, src []float32) {
		for i := 0; i < len(src); i += 8 {
			*(*[8]float32)(dst[i:]) = fn(*(*[8]float32)(src[i:]))
		}
	}, opts)
}

// ValidateBlock is Validate for a slice-based approximation.
func ValidateBlock(fn BlockFunc, lo, hi float32, n int, opts ...Option) (Report, error) {
	return run(lo, hi, n, 1, fn, opts)
}

// Sample returns sample i of n evenly spaced points in [lo, hi). Points that
// round up to hi in float32 are pulled back to the largest float32 below hi.
func Sample(lo, hi float32, i, n int) float32 {
	step := (float64(hi) - float64(lo)) / float64(n)

	x := float32(float64(lo) + float64(i)*step)
	if x >= hi {
		x = math.Nextafter32(hi, lo)
	}

	return x
}

func checkDomain(lo, hi float32, n int) error {
	l, h := float64(lo), float64(hi)
	if math.IsNaN(l) || math.IsNaN(h) || math.IsInf(l, 0) || math.IsInf(h, 0) || !(l < h) {
		return fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, lo, hi)
	}

	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}

	return nil
}

// run evaluates n samples chunk by chunk. Chunks hold a multiple of width
// inputs; inputs past the last sample are set to lo and their outputs are
// not collected.
func run(lo, hi float32, n, width int, eval func(dst, src []float32), opts []Option) (Report, error) {
	if err := checkDomain(lo, hi, n); err != nil {
		return Report{}, err
	}

	cfg := ApplyOptions(opts...)
	chunk := min(cfg.ChunkSize, n)
	chunk = (chunk + width - 1) / width * width

	src := make([]float32, chunk)
	dst := make([]float32, chunk)
	ref := make([]float64, chunk)
	got := make([]float64, chunk)

	col := NewCollector()

	for start := 0; start < n; start += chunk {
		valid := min(chunk, n-start)

		for i := range src {
			if i < valid {
				src[i] = Sample(lo, hi, start+i, n)
			} else {
				src[i] = lo
			}
		}

		eval(dst, src)

		for i := range valid {
			ref[i] = cfg.Reference(float64(src[i]))
			got[i] = float64(dst[i])
		}

		col.Update(ref[:valid], got[:valid])
	}

	r := col.Result()
	r.Lo, r.Hi = lo, hi

	return r, nil
}
