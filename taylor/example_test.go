// SPDX-License-Identifier: MIT

package taylor_test

import (
	"fmt"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
	"github.com/katalvlaran/lvcalc/taylor"
)

// ExampleBuild shows the maximum error of sin's Taylor polynomials on [-1, 1].
// Order counts terms, so order 4 is the cubic x - x³/6.
func ExampleBuild() {
	f := expr.MustParse("sin(x)")
	xs, _ := grid.Span(-1, 1, 201)
	for _, order := range []int{4, 6, 8} {
		a, err := taylor.Build(f, taylor.DetectFamily(f.String()), 0, order, xs, taylor.WithError())
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("order %d: max error %.2e\n", order, a.MaxError)
	}
	// Output:
	// order 4: max error 8.14e-03
	// order 6: max error 1.96e-04
	// order 8: max error 2.73e-06
}
