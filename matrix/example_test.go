package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// ExampleMul folds the terms [3; 7, 16] into the convergent 355/113.
func ExampleMul() {
	acc, _ := matrix.Identity(2)
	for _, t := range []int64{3, 7, 16} {
		acc, _ = matrix.Mul(acc, matrix.TermMatrix(rational.FromInt(t)))
	}
	r, _ := acc.ColumnRat(0)
	fmt.Println(r)
	// Output: 355/113
}
