// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linbench/matrix"
)

// ExampleMulAdd accumulates a product into an existing matrix.
func ExampleMulAdd() {
	a, _ := matrix.NewSquare(2)
	_ = a.Identity()
	_ = a.Set(0, 1, 2)

	b, _ := matrix.NewSquare(2)
	_ = b.Identity()

	c, _ := matrix.NewSquare(2)
	_ = c.Identity()

	// C = I + A·I
	if err := matrix.MulAdd(c, a, b); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [2, 2]
	// [0, 2]
}
