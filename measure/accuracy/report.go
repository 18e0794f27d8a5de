package accuracy

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Report summarizes relative error over a sampled domain.
type Report struct {
	Lo      float32 `json:"lo"`
	Hi      float32 `json:"hi"`
	Samples int     `json:"samples"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

func (r Report) String() string {
	return fmt.Sprintf("[%g, %g) relative error: ave = %.9f, min = %.9f, max = %.9f",
		r.Lo, r.Hi, r.Average, r.Min, r.Max)
}

// Collector accumulates relative errors block by block.
type Collector struct {
	n        int
	sum      float64
	min, max float64

	diff, rel []float64
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Update folds the relative errors of got against ref into the running
// statistics. Panics if the lengths differ.
func (c *Collector) Update(ref, got []float64) {
	if len(ref) != len(got) {
		panic("accuracy: slice length mismatch")
	}

	n := len(ref)
	c.grow(n)

	diff, rel := c.diff[:n], c.rel[:n]

	// diff = ref - got
	vecmath.ScaleBlock(diff, got, -1)
	vecmath.AddBlockInPlace(diff, ref)

	for i, d := range diff {
		rel[i] = math.Abs(d) / ref[i]
	}

	for _, e := range rel {
		if c.n == 0 {
			c.min, c.max = e, e
		} else {
			c.min = min(c.min, e)
			c.max = max(c.max, e)
		}

		c.sum += e
		c.n++
	}
}

func (c *Collector) grow(n int) {
	if cap(c.diff) >= n {
		return
	}

	c.diff = make([]float64, n)
	c.rel = make([]float64, n)
}

// Result returns the statistics accumulated so far. Lo and Hi are left zero.
func (c *Collector) Result() Report {
	if c.n == 0 {
		return Report{}
	}

	return Report{
		Samples: c.n,
		Average: c.sum / float64(c.n),
		Min:     c.min,
		Max:     c.max,
	}
}

// Reset clears accumulated data, keeping scratch buffers.
func (c *Collector) Reset() {
	c.n = 0
	c.sum = 0
	c.min, c.max = 0, 0
}
