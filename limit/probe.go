package limit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
)

// Probe samples f around point and estimates both one-sided limits.
//
//	left[i]  = point - epsilon + epsilon·i/10,  i = 0..19
//	right[i] = point + epsilon·i/10,            i = 0..19
//
// Exists:     |L - R| < tol
// Continuous: Exists and |L - f(point)| < tol and |R - f(point)| < tol
//
// Undefined samples fall back to 0, so a function undefined at point is
// Continuous only if both limits are themselves within tol of 0.
//
// Errors: grid.ErrNonFinite for point, ErrBadEpsilon.
func Probe(f expr.Func, point, epsilon float64, opts ...Option) (Result, error) {
	o := options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	if err := grid.ValidateFinite(point); err != nil {
		return Result{}, fmt.Errorf("Probe: %w", err)
	}
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0 {
		return Result{}, fmt.Errorf("Probe: %w", ErrBadEpsilon)
	}

	left := make([]float64, Samples)
	right := make([]float64, Samples)
	for i := range left {
		step := epsilon * float64(i) / Subdivision
		left[i] = point - epsilon + step
		right[i] = point + step
	}

	r := Result{
		Point:        point,
		Epsilon:      epsilon,
		Left:         grid.SampleAt(f, left),
		Right:        grid.SampleAt(f, right),
		Tolerance:    o.tolerance,
		Extrapolated: !o.direct,
	}
	r.Value, r.ValueDefined = expr.Safe(f, point)

	delta := epsilon / ApproachDivisor
	if o.direct {
		r.LeftLimit = expr.Value(f, point-delta)
		r.RightLimit = expr.Value(f, point+delta)
	} else {
		r.LeftLimit = approach(f, point, -delta)
		r.RightLimit = approach(f, point, delta)
	}

	r.Exists = math.Abs(r.LeftLimit-r.RightLimit) < o.tolerance
	r.Continuous = r.Exists &&
		math.Abs(r.LeftLimit-r.Value) < o.tolerance &&
		math.Abs(r.RightLimit-r.Value) < o.tolerance

	return r, nil
}

// approach extrapolates f(point + t) to t → 0 from t = d and t = d/2:
// 2·f(point + d/2) - f(point + d), exact for functions linear near point.
func approach(f expr.Func, point, d float64) float64 {
	return 2*expr.Value(f, point+d/2) - expr.Value(f, point+d)
}
