// Package tableexp provides a table-driven single-precision approximation of
// e^x.
//
// The input is scaled by n/ln2 and rounded to an integer k with the
// 1.5*2^23 addition trick; k splits into an exponent (k >> s) and a table
// index (k & (n-1)) whose entry holds the mantissa of 2^(index/n). The
// result is 2^(k/n) * (1 + r), where r is the first-order remainder.
//
// # Accuracy
//
// Error shrinks as the table grows. Relative error over [-30, 30]:
//
//	Size128  (512 B):  average ~1.3e-6, max ~4.7e-6
//	Size256  (1 KB):   average ~4.6e-7, max ~1.9e-6
//	Size1024 (4 KB):   average ~3.1e-7, max ~1.2e-6
//
// For larger |x| the rounding of the remainder dominates; over [-3, 3] the
// 1024-entry table averages ~5e-8 with a max of ~2.4e-7.
//
// The valid domain matches the float32 exponential: roughly [-87, 88].
// Outside it the reconstructed exponent wraps and results are meaningless.
//
// # Usage
//
//	y := tableexp.Exp(x, tableexp.Size1024)
//	ys := tableexp.Exp8(xs, tableexp.Size256)
//	tableexp.ExpBlock(dst, src, tableexp.Size1024)
//
// Tables are generated offline by cmd/exptablegen and compiled in; they are
// read-only and safe for concurrent use.
package tableexp

//go:generate go run ../../cmd/exptablegen -pkg tableexp -name mantissas7 -o table128_gen.go 7
//go:generate go run ../../cmd/exptablegen -pkg tableexp -name mantissas8 -o table256_gen.go 8
//go:generate go run ../../cmd/exptablegen -pkg tableexp -name mantissas10 -o table1024_gen.go 10
