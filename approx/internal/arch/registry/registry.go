// Package registry stores the exponential block kernels available for the
// current build, keyed by the SIMD level they are tuned for.
//
// Kernel packages register themselves from init functions; the dispatch
// package selects the highest-priority entry the running CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-fastexp/approx/internal/expkernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// PolyBlockFn writes the polynomial approximation of e^src[i] to dst[i].
// len(dst) == len(src) is checked by the caller.
type PolyBlockFn func(dst, src []float32)

// TableBlockFn writes the table approximation of e^src[i] to dst[i].
type TableBlockFn func(dst, src []float32, p *expkernel.Params)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// Lanes is the batch width the kernels are unrolled for.
	Lanes int

	PolyBlock  PolyBlockFn
	TableBlock TableBlockFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
