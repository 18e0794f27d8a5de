package polyexp_test

import (
	"fmt"

	"github.com/cwbudde/algo-fastexp/approx/polyexp"
)

func ExampleExp() {
	fmt.Printf("%.3f\n", polyexp.Exp(1.88))
	// Output:
	// 6.553
}

func ExampleExp4() {
	y := polyexp.Exp4([4]float32{0, 1, 2, 3})
	for _, v := range y {
		fmt.Printf("%.2f\n", v)
	}
	// Output:
	// 1.00
	// 2.72
	// 7.39
	// 20.09
}

func ExampleExpBlock() {
	src := []float32{-1, 0, 1}
	dst := make([]float32, len(src))
	polyexp.ExpBlock(dst, src)
	fmt.Printf("%.4f %.4f %.4f\n", dst[0], dst[1], dst[2])
	// Output:
	// 0.3679 1.0000 2.7183
}
