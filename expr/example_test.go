package expr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcalc/expr"
)

// ExampleParse shows parsing once and evaluating at several points,
// with the zero fallback for points outside the domain.
func ExampleParse() {
	f, err := expr.Parse("log(x) + x^2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, x := range []float64{-1, 1, 2} {
		y, ok := expr.Safe(f, x)
		fmt.Printf("x=%g y=%.4f defined=%v\n", x, y, ok)
	}

	_, err = f.Eval(-1)
	fmt.Println(errors.Is(err, expr.ErrEvaluation), errors.Is(err, expr.ErrDomain))
	// Output:
	// x=-1 y=0.0000 defined=false
	// x=1 y=1.0000 defined=true
	// x=2 y=4.6931 defined=true
	// true true
}
