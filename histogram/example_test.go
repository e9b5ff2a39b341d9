package histogram_test

import (
	"fmt"

	"github.com/katalvlaran/statkit/histogram"
)

// Example demonstrates binning a small sample and reading the bars.
func Example() {
	h, _ := histogram.New(0, 4, 4)
	h.ObserveAll([]float64{0.5, 1.2, 1.8, 1.9, 2.5, 3.1, 5.0})

	for i := 0; i < h.Bins(); i++ {
		lo, hi, _ := h.Edges(i)
		c, _ := h.Count(i)
		fmt.Printf("[%.0f,%.0f): %d\n", lo, hi, c)
	}
	fmt.Println("overflow:", h.Overflow())

	// Output:
	// [0,1): 1
	// [1,2): 3
	// [2,3): 1
	// [3,4): 1
	// overflow: 1
}
