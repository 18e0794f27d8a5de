// Package dispatch resolves, once per process, which registered block kernel
// the exponential packages use.
package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-fastexp/approx/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	selected atomic.Pointer[registry.OpEntry]

	// initMu serializes selection and Reset. Kernel only takes it on a miss.
	initMu sync.Mutex
)

func lookupKernel() *registry.OpEntry {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("dispatch: no exp kernel registered (missing generic fallback?)")
	}

	if entry.PolyBlock == nil || entry.TableBlock == nil {
		panic("dispatch: selected kernel " + entry.Name + " is incomplete")
	}

	return entry
}

// Kernel returns the kernel selected for the current CPU. After the first
// call it is a single atomic load.
func Kernel() *registry.OpEntry {
	if k := selected.Load(); k != nil {
		return k
	}

	initMu.Lock()
	defer initMu.Unlock()

	if k := selected.Load(); k != nil {
		return k
	}

	k := lookupKernel()
	selected.Store(k)

	return k
}

// Reset discards the cached selection so the next call re-reads CPU
// features. Intended for tests that force features.
func Reset() {
	initMu.Lock()
	defer initMu.Unlock()

	selected.Store(nil)
}
