//go:build arm64 && !purego

package dispatch

import (
	_ "github.com/cwbudde/algo-fastexp/approx/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-fastexp/approx/internal/arch/generic"    // register generic backend
)
