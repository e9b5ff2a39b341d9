package table_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/statkit/dist"
	"github.com/katalvlaran/statkit/table"
)

// ExampleSample demonstrates the sampling workflow: draw two columns
// from different distributions into one aligned table.
func ExampleSample() {
	n, _ := dist.NewNormal(170, 8)
	e, _ := dist.NewExponential(0.25)

	tb, _ := table.Sample(dist.NewRNG(42), 1_000,
		table.ColumnSpec{Name: "height", Dist: n},
		table.ColumnSpec{Name: "wait", Dist: e},
	)

	fmt.Println("columns:", tb.Names())
	fmt.Println("rows:", tb.Len())

	// Output:
	// columns: [height wait]
	// rows: 1000
}

// Example_roundTrip demonstrates the persistence workflow: write a
// table as CSV and read it back unchanged.
func Example_roundTrip() {
	tb, _ := table.FromColumns(
		[]string{"x", "y"},
		[][]float64{{1, 2, 3}, {0.5, 0.25, 0.125}},
	)

	var buf bytes.Buffer
	_ = tb.WriteCSV(&buf)

	back, _ := table.ReadCSV(&buf)
	y, _ := back.Column("y")

	fmt.Println("names:", back.Names())
	fmt.Println("y:", y)

	// Output:
	// names: [x y]
	// y: [0.5 0.25 0.125]
}
