//go:build amd64 && !purego

package dispatch

import (
	_ "github.com/cwbudde/algo-fastexp/approx/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-fastexp/approx/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-fastexp/approx/internal/arch/generic"    // register generic backend
)
