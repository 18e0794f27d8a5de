package main

import (
	"github.com/cwbudde/algo-fastexp/approx/polyexp"
	"github.com/cwbudde/algo-fastexp/approx/tableexp"
	"github.com/cwbudde/algo-fastexp/measure/accuracy"
	approx "github.com/meko-christian/algo-approx"
)

type variant struct {
	name string
	run  func(lo, hi float32, n int) (accuracy.Report, error)
}

var registry = buildRegistry()

func buildRegistry() []variant {
	vs := []variant{
		{"poly", scalar(polyexp.Exp)},
		{"polyx4", func(lo, hi float32, n int) (accuracy.Report, error) {
			return accuracy.Validate4(polyexp.Exp4, lo, hi, n)
		}},
		{"polyx8", func(lo, hi float32, n int) (accuracy.Report, error) {
			return accuracy.Validate8(polyexp.Exp8, lo, hi, n)
		}},
		{"polyblock", func(lo, hi float32, n int) (accuracy.Report, error) {
			return accuracy.ValidateBlock(polyexp.ExpBlock, lo, hi, n)
		}},
	}

	for _, size := range []tableexp.TableSize{tableexp.Size128, tableexp.Size256, tableexp.Size1024} {
		vs = append(vs, tableVariants(size)...)
	}

	// Baseline: the float64 approximation the rest of the DSP stack uses.
	vs = append(vs, variant{"algo-approx", scalar(func(x float32) float32 {
		return float32(approx.FastExp(float64(x)))
	})})

	return vs
}

func scalar(fn accuracy.Func) func(lo, hi float32, n int) (accuracy.Report, error) {
	return func(lo, hi float32, n int) (accuracy.Report, error) {
		return accuracy.Validate(fn, lo, hi, n)
	}
}

func tableVariants(size tableexp.TableSize) []variant {
	tab := tableexp.TableFor(size)
	prefix := "table" + size.String()

	return []variant{
		{prefix, scalar(tab.Exp)},
		{prefix + "x4", func(lo, hi float32, n int) (accuracy.Report, error) {
			return accuracy.Validate4(tab.Exp4, lo, hi, n)
		}},
		{prefix + "x8", func(lo, hi float32, n int) (accuracy.Report, error) {
			return accuracy.Validate8(tab.Exp8, lo, hi, n)
		}},
		{prefix + "block", func(lo, hi float32, n int) (accuracy.Report, error) {
			return accuracy.ValidateBlock(tab.ExpBlock, lo, hi, n)
		}},
	}
}
