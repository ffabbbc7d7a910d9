// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcalc/deriv"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
)

// Grid returns the default abscissae x_i = (i - 500)/50, i = 0..999.
func Grid() []float64 {
	xs := make([]float64, GridPoints)
	for i := range xs {
		xs[i] = float64(i-GridPoints/2) / GridDivisor
	}
	return xs
}

func validate(fam Family, p Params, coeffs []float64) error {
	if !fam.valid() {
		return ErrUnknownFamily
	}
	if len(coeffs) > MaxDegree+1 {
		return ErrDegree
	}
	vs := append([]float64{p.A, p.B, p.C, p.D}, coeffs...)
	return grid.ValidateFinite(vs...)
}

// base returns the untransformed family member. coeffs are ignored unless
// fam is Polynomial; they are c_0..c_k of Σ c_i·t^i.
func base(fam Family, coeffs []float64) func(float64) float64 {
	switch fam {
	case Sin:
		return math.Sin
	case Cos:
		return math.Cos
	case Tan:
		return math.Tan
	case Exp:
		return math.Exp
	case Log:
		return func(t float64) float64 { return math.Log(math.Abs(t) + LogOffset) }
	default:
		cs := append([]float64(nil), coeffs...)
		return func(t float64) float64 {
			var y float64
			for i := len(cs) - 1; i >= 0; i-- {
				y = y*t + cs[i]
			}
			return y
		}
	}
}

// Func returns g(x) = C·base(A·(x - B)) + D as an expr.Func.
// Non-finite values (tan at its poles, exp overflow) are evaluation errors.
//
// Errors: ErrUnknownFamily, ErrDegree, grid.ErrNonFinite.
func Func(fam Family, p Params, coeffs []float64) (expr.Func, error) {
	if err := validate(fam, p, coeffs); err != nil {
		return nil, fmt.Errorf("Func: %w", err)
	}
	fn := base(fam, coeffs)
	return expr.FuncOf(func(x float64) float64 {
		return p.C*fn(p.A*(x-p.B)) + p.D
	}), nil
}

// Curves samples g and its central-difference derivative
// (step deriv.DefaultCentralStep) on xs.
func Curves(fam Family, p Params, coeffs []float64, xs []float64) (Result, error) {
	g, err := Func(fam, p, coeffs)
	if err != nil {
		return Result{}, fmt.Errorf("Curves: %w", err)
	}
	d, err := deriv.Curve(g, xs, deriv.DefaultCentralStep)
	if err != nil {
		return Result{}, fmt.Errorf("Curves: %w", err)
	}

	return Result{
		Family:     fam,
		Label:      Describe(fam, p, coeffs),
		Function:   grid.SampleAt(g, xs),
		Derivative: d,
	}, nil
}

// Describe renders g for display, e.g. "f(x) = 2 * sin(1(x - 0.5)) + 0"
// or "f(x) = 1 * 1x^0 + 0x^1 + 3x^2 + 0".
func Describe(fam Family, p Params, coeffs []float64) string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	var inner string
	if fam == Polynomial {
		terms := make([]string, len(coeffs))
		for i, c := range coeffs {
			terms[i] = num(c) + "x^" + strconv.Itoa(i)
		}
		inner = strings.Join(terms, " + ")
	} else {
		inner = fmt.Sprintf("%s(%s(x - %s))", fam, num(p.A), num(p.B))
	}

	return fmt.Sprintf("f(x) = %s * %s + %s", num(p.C), inner, num(p.D))
}
