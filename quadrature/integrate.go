// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
)

// Operation names for uniform error wrapping.
const (
	opIntegrate  = "Integrate"
	opCompareAll = "CompareAll"
	opRectangles = "Rectangles"
	opReference  = "Reference"
)

func quadErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validate checks finite bounds and n ≥ 1, in that order.
func validate(a, b float64, n int) error {
	if err := grid.ValidateFinite(a, b); err != nil {
		return err
	}
	if n < 1 {
		return ErrNoSubintervals
	}
	return nil
}

// Integrate approximates ∫_a^b f(x) dx with rule m over n subintervals.
//
// Errors: grid.ErrNonFinite, ErrNoSubintervals, ErrUnknownMethod.
// Evaluation failures never abort the sum; they are counted in Undefined.
// Complexity: O(n) evaluations (2n for Trapezoid).
func Integrate(f expr.Func, a, b float64, n int, m Method) (Result, error) {
	if err := validate(a, b, n); err != nil {
		return Result{}, quadErrorf(opIntegrate, err)
	}
	if !m.valid() {
		return Result{}, quadErrorf(opIntegrate, ErrUnknownMethod)
	}
	return integrate(f, a, b, n, m), nil
}

// integrate assumes validated inputs.
func integrate(f expr.Func, a, b float64, n int, m Method) Result {
	res := Result{Method: m, N: n}
	if a == b {
		return res
	}

	dx := (b - a) / float64(n)
	res.DX = dx

	eval := func(x float64) float64 {
		y, ok := expr.Safe(f, x)
		if !ok {
			res.Undefined++
		}
		return y
	}

	var sum float64
	for i := 0; i < n; i++ {
		x0 := a + float64(i)*dx
		switch m {
		case Left:
			sum += eval(x0) * dx
		case Right:
			sum += eval(a+float64(i+1)*dx) * dx
		case Midpoint:
			sum += eval(x0+dx/2) * dx
		case Trapezoid:
			sum += (eval(x0) + eval(a+float64(i+1)*dx)) / 2 * dx
		}
	}
	res.Value = sum

	return res
}

// CompareAll runs every rule over the same interval and subdivision.
//
// Left, Right and Trapezoid share the nodes x_i, so f is memoised for the
// duration of the call: n+1 node evaluations plus n midpoints in total.
// Reference is a Gauss–Legendre value with ReferenceNodes nodes.
func CompareAll(f expr.Func, a, b float64, n int) (Comparison, error) {
	if err := validate(a, b, n); err != nil {
		return Comparison{}, quadErrorf(opCompareAll, err)
	}

	memo := expr.Memoize(f)
	cmp := Comparison{
		A:         a,
		B:         b,
		N:         n,
		Results:   make([]Result, 0, numMethods),
		Deviation: make([]float64, 0, numMethods),
		Reference: reference(memo, a, b, ReferenceNodes),
	}
	for _, m := range Methods() {
		r := integrate(memo, a, b, n, m)
		cmp.Results = append(cmp.Results, r)
		cmp.Deviation = append(cmp.Deviation, math.Abs(r.Value-cmp.Reference))
	}

	return cmp, nil
}

// Reference approximates ∫_a^b f(x) dx with nodes-point Gauss–Legendre
// quadrature. Undefined points contribute 0, as in the elementary rules.
func Reference(f expr.Func, a, b float64, nodes int) (float64, error) {
	if err := validate(a, b, nodes); err != nil {
		return 0, quadErrorf(opReference, err)
	}
	return reference(f, a, b, nodes), nil
}

func reference(f expr.Func, a, b float64, nodes int) float64 {
	switch {
	case a == b:
		return 0
	case a > b:
		return -reference(f, b, a, nodes)
	}
	fn := func(x float64) float64 { return expr.Value(f, x) }
	return quad.Fixed(fn, a, b, nodes, quad.Legendre{}, 0)
}

// Rectangles returns the polygon drawn for every subinterval of rule m:
// a rectangle of height f(node) for Left/Right/Midpoint, a trapezoid for
// Trapezoid. Vertex order: (x0,0) → (x1,0) → (x1,h1) → (x0,h0) → (x0,0).
func Rectangles(f expr.Func, a, b float64, n int, m Method) ([]Cell, error) {
	if err := validate(a, b, n); err != nil {
		return nil, quadErrorf(opRectangles, err)
	}
	if !m.valid() {
		return nil, quadErrorf(opRectangles, ErrUnknownMethod)
	}

	dx := (b - a) / float64(n)
	cells := make([]Cell, n)
	for i := range cells {
		x0 := a + float64(i)*dx
		x1 := a + float64(i+1)*dx

		var h0, h1 float64
		switch m {
		case Left:
			h0 = expr.Value(f, x0)
			h1 = h0
		case Right:
			h0 = expr.Value(f, x1)
			h1 = h0
		case Midpoint:
			h0 = expr.Value(f, x0+dx/2)
			h1 = h0
		case Trapezoid:
			h0 = expr.Value(f, x0)
			h1 = expr.Value(f, x1)
		}

		cells[i] = Cell{
			X: [5]float64{x0, x1, x1, x0, x0},
			Y: [5]float64{0, 0, h1, h0, 0},
		}
	}

	return cells, nil
}
