// SPDX-License-Identifier: MIT

package taylor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
)

const (
	opCoefficients = "Coefficients"
	opBuild        = "Build"
)

// Factorial returns k! as a float64; k ≤ 1 yields 1.
func Factorial(k int) float64 {
	r := 1.0
	for i := 2; i <= k; i++ {
		r *= float64(i)
	}
	return r
}

// DetectFamily classifies src by its canonical form.
func DetectFamily(src string) Family {
	if fam, ok := canonicalFamilies[expr.Canonical(src)]; ok {
		return fam
	}
	return Generic
}

func validateOrder(order int) error {
	if order < 1 || order > MaxOrder {
		return ErrOrderRange
	}
	return nil
}

// Coefficients returns the order coefficients c_0..c_{order-1} of the Taylor
// polynomial of f at x0.
// f is only consulted for Generic; closed-form families ignore it.
//
// Errors: grid.ErrNonFinite, ErrOrderRange.
func Coefficients(f expr.Func, fam Family, x0 float64, order int) ([]float64, error) {
	if err := grid.ValidateFinite(x0); err != nil {
		return nil, fmt.Errorf("%s: %w", opCoefficients, err)
	}
	if err := validateOrder(order); err != nil {
		return nil, fmt.Errorf("%s: %w", opCoefficients, err)
	}
	return coefficients(f, fam, x0, order, DefaultStep), nil
}

func coefficients(f expr.Func, fam Family, x0 float64, order int, h float64) []float64 {
	cs := make([]float64, order)
	for k := range cs {
		d := derivative(f, fam, x0, k, h)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			d = expr.Fallback
		}
		cs[k] = d / Factorial(k)
	}
	return cs
}

// derivative returns f^(k)(x0). NaN marks an undefined value.
func derivative(f expr.Func, fam Family, x0 float64, k int, h float64) float64 {
	switch fam {
	case Sin:
		return [4]float64{math.Sin(x0), math.Cos(x0), -math.Sin(x0), -math.Cos(x0)}[k%4]
	case Cos:
		return [4]float64{math.Cos(x0), -math.Sin(x0), -math.Cos(x0), math.Sin(x0)}[k%4]
	case Exp:
		return math.Exp(x0)
	case Ln:
		if x0 <= 0 {
			return math.NaN()
		}
		if k == 0 {
			return math.Log(x0)
		}
		sign := 1.0
		if k%2 == 0 {
			sign = -1
		}
		return sign * Factorial(k-1) / math.Pow(x0, float64(k))
	default:
		return forwardDifference(f, x0, k, h)
	}
}

// forwardDifference returns Δ^k f(x0) / h_k^k with
// Δ^k f(x0) = Σ_j (-1)^(k-j)·C(k,j)·f(x0 + j·h_k).
// The step grows with k to keep cancellation error bounded.
func forwardDifference(f expr.Func, x0 float64, k int, h float64) float64 {
	if k == 0 {
		y, ok := expr.Safe(f, x0)
		if !ok {
			return math.NaN()
		}
		return y
	}

	hk := math.Max(h, math.Pow(epsilon, 1/float64(k+1)))
	var (
		sum   float64
		binom = 1.0 // C(k, j)
	)
	for j := 0; j <= k; j++ {
		y, ok := expr.Safe(f, x0+float64(j)*hk)
		if !ok {
			return math.NaN()
		}
		if (k-j)%2 == 0 {
			sum += binom * y
		} else {
			sum -= binom * y
		}
		binom = binom * float64(k-j) / float64(j+1)
	}
	return sum / math.Pow(hk, float64(k))
}

// epsilon is the float64 machine epsilon.
const epsilon = 2.220446049250313e-16

// Eval evaluates Σ cs[k]·(x-x0)^k by Horner's rule.
func Eval(cs []float64, x0, x float64) float64 {
	t := x - x0
	var y float64
	for k := len(cs) - 1; k >= 0; k-- {
		y = y*t + cs[k]
	}
	return y
}

// Build samples the Taylor polynomial of f at x0 with order terms
// (degree order-1) on xs.
//
// xs is copied; every returned curve shares its abscissae. Points where the
// polynomial overflows are marked undefined.
//
// Errors: grid.ErrNonFinite, ErrOrderRange.
// Complexity: O(order·len(xs)), plus O(len(xs)) evaluations of f with
// WithOriginal and O(order²) for Generic coefficients.
func Build(f expr.Func, fam Family, x0 float64, order int, xs []float64, opts ...Option) (Approximation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := grid.ValidateFinite(x0); err != nil {
		return Approximation{}, fmt.Errorf("%s: %w", opBuild, err)
	}
	if err := validateOrder(order); err != nil {
		return Approximation{}, fmt.Errorf("%s: %w", opBuild, err)
	}

	cs := coefficients(f, fam, x0, order, o.step)
	a := Approximation{
		X0:           x0,
		Order:        order,
		Family:       fam,
		Coefficients: cs,
		Approx:       polynomialCurve(xs, func(x float64) float64 { return Eval(cs, x0, x) }),
	}

	if o.original {
		orig := grid.SampleAt(f, xs)
		a.Original = &orig
	}
	if o.errCurve {
		diff, err := a.Original.AbsDiff(a.Approx)
		if err != nil {
			return Approximation{}, fmt.Errorf("%s: %w", opBuild, err)
		}
		a.Error = &diff
		a.MaxError = diff.MaxAbs()
	}
	if o.terms {
		a.Terms = make([]grid.Curve, len(cs))
		for k, c := range cs {
			a.Terms[k] = polynomialCurve(xs, func(x float64) float64 {
				return c * math.Pow(x-x0, float64(k))
			})
		}
	}

	return a, nil
}

// polynomialCurve samples a closed-form function, marking non-finite values undefined.
func polynomialCurve(xs []float64, fn func(float64) float64) grid.Curve {
	return grid.SampleAt(expr.FuncOf(fn), xs)
}
