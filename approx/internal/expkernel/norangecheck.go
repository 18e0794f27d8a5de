//go:build norangecheck

package expkernel

// RangeCheck reports whether the polynomial kernel clamps its bit-domain
// intermediate to the non-negative normal float range.
//
// Built with the norangecheck tag: inputs must lie in about [-88, 88].
const RangeCheck = false
