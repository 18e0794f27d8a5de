// Package expkernel holds the per-lane arithmetic shared by the polynomial and
// table-driven exponential approximations.
//
// Every function here is pure and branchless per lane. The fixed-width
// variants apply the scalar kernel to each lane independently, so a batch
// result is bit-identical to the corresponding scalar calls.
package expkernel
