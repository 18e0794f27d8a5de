//go:build !norangecheck

package expkernel

// RangeCheck reports whether the polynomial kernel clamps its bit-domain
// intermediate to the non-negative normal float range.
const RangeCheck = true
