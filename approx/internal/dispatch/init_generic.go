//go:build purego || (!amd64 && !arm64)

package dispatch

import (
	_ "github.com/cwbudde/algo-fastexp/approx/internal/arch/generic" // register generic backend
)
