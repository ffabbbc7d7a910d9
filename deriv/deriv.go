package deriv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
)

func validateStep(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return ErrBadStep
	}
	return nil
}

// Forward returns (f(x+h) - f(x)) / h.
//
// Evaluation failures inside the stencil are replaced by 0 (expr.Safe);
// only invalid parameters are reported.
//
// Errors: grid.ErrNonFinite for a non-finite x, ErrBadStep.
func Forward(f expr.Func, x, h float64) (float64, error) {
	if err := grid.ValidateFinite(x); err != nil {
		return 0, fmt.Errorf("Forward: %w", err)
	}
	if err := validateStep(h); err != nil {
		return 0, fmt.Errorf("Forward: %w", err)
	}
	return (expr.Value(f, x+h) - expr.Value(f, x)) / h, nil
}

// Tangent returns the tangent line at x with forward-difference slope,
// drawn over [x-halfWidth, x+halfWidth].
func Tangent(f expr.Func, x, h, halfWidth float64) (Line, error) {
	slope, err := Forward(f, x, h)
	if err != nil {
		return Line{}, fmt.Errorf("Tangent: %w", err)
	}
	if math.IsNaN(halfWidth) || math.IsInf(halfWidth, 0) || halfWidth <= 0 {
		return Line{}, fmt.Errorf("Tangent: %w", ErrBadWidth)
	}

	l := Line{X0: x, Y0: expr.Value(f, x), Slope: slope, Step: h}
	l.X = [2]float64{x - halfWidth, x + halfWidth}
	l.Y = [2]float64{l.At(l.X[0]), l.At(l.X[1])}

	return l, nil
}

// Secant returns the chord from (x, f(x)) to (x+h, f(x+h)).
func Secant(f expr.Func, x, h float64) (Line, error) {
	slope, err := Forward(f, x, h)
	if err != nil {
		return Line{}, fmt.Errorf("Secant: %w", err)
	}

	y0 := expr.Value(f, x)
	return Line{
		X0:    x,
		Y0:    y0,
		Slope: slope,
		Step:  h,
		X:     [2]float64{x, x + h},
		Y:     [2]float64{y0, expr.Value(f, x+h)},
	}, nil
}

// Secants returns one Secant per step in hs, in the same order.
func Secants(f expr.Func, x float64, hs []float64) ([]Line, error) {
	out := make([]Line, 0, len(hs))
	for _, h := range hs {
		l, err := Secant(f, x, h)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Central returns the second-order central difference (f(x+h) - f(x-h)) / 2h.
func Central(f expr.Func, x, h float64) (float64, error) {
	if err := grid.ValidateFinite(x); err != nil {
		return 0, fmt.Errorf("Central: %w", err)
	}
	if err := validateStep(h); err != nil {
		return 0, fmt.Errorf("Central: %w", err)
	}
	fn := func(t float64) float64 { return expr.Value(f, t) }
	return fd.Derivative(fn, x, &fd.Settings{Formula: fd.Central, Step: h}), nil
}

// Curve returns the central-difference derivative of f at every xs[i].
// A point is Defined only when f is defined on both sides of the stencil.
func Curve(f expr.Func, xs []float64, h float64) (grid.Curve, error) {
	if err := validateStep(h); err != nil {
		return grid.Curve{}, fmt.Errorf("Curve: %w", err)
	}

	c := grid.Curve{
		X:       make([]float64, len(xs)),
		Y:       make([]float64, len(xs)),
		Defined: make([]bool, len(xs)),
	}
	copy(c.X, xs)

	var ok bool
	fn := func(t float64) float64 {
		y, good := expr.Safe(f, t)
		ok = ok && good
		return y
	}
	settings := &fd.Settings{Formula: fd.Central, Step: h}
	for i, x := range xs {
		ok = true
		d := fd.Derivative(fn, x, settings)
		if ok {
			c.Y[i], c.Defined[i] = d, true
		}
	}

	return c, nil
}
