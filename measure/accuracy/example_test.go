package accuracy_test

import (
	"fmt"

	"github.com/cwbudde/algo-fastexp/approx/polyexp"
	"github.com/cwbudde/algo-fastexp/approx/tableexp"
	"github.com/cwbudde/algo-fastexp/measure/accuracy"
)

func ExampleValidate() {
	r, err := accuracy.Validate(polyexp.Exp, -30, 30, 10000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(r.Samples, r.Max < 1e-4)
	// Output:
	// 10000 true
}

func ExampleValidate8() {
	exp8 := func(x [8]float32) [8]float32 {
		return tableexp.Exp8(x, tableexp.Size1024)
	}

	r, err := accuracy.Validate8(exp8, -3, 3, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(r.Max < 1e-6)
	// Output:
	// true
}
