package postprocess_test

import (
	"fmt"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/postprocess"
)

// ExampleBoundInterval restricts a solution to the x-window of
// practical interest before plotting or tabulating it.
func ExampleBoundInterval() {
	x := []float64{-3, -2, -1, 0, 1, 2, 3}
	values := [][]float64{{1}, {2}, {3}, {4}, {5}, {6}, {7}}

	bx, bv, err := postprocess.BoundInterval(x, values, -1, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("x:", bx)
	fmt.Println("rows:", len(bv))
	// Output:
	// x: [-1 0 1 2]
	// rows: 4
}
