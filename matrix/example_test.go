package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/exprnorm/matrix"
)

// ExampleColSums computes per-sample totals of a small counts table and
// spots the empty sample.
func ExampleColSums() {
	counts, _ := matrix.NewDenseFromRows([][]float64{
		{0, 5, 1},
		{0, 5, 2},
	})

	sums, _ := matrix.ColSums(counts)
	empty, _ := matrix.ZeroColumns(counts)
	fmt.Println(sums, empty)

	// Output:
	// [0 10 3] [0]
}

// ExampleDense_RawRowView edits a row in place without copying.
func ExampleDense_RawRowView() {
	m, _ := matrix.NewDense(2, 3)
	row := m.RawRowView(1)
	for j := range row {
		row[j] = float64(j + 1)
	}
	fmt.Print(m)

	// Output:
	// [0, 0, 0]
	// [1, 2, 3]
}
