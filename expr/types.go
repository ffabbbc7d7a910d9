package expr

import "math"

// Variable is the single free variable accepted by the grammar.
const Variable = "x"

// Fallback is the value substituted for a point where evaluation fails.
const Fallback = 0.0

// Func is a real function of one real variable that may fail pointwise.
//
// Implementations must be pure: the same x always yields the same result
// and no call has side effects. *Expression is the parsed implementation;
// FuncOf adapts closed-form Go functions.
type Func interface {
	Eval(x float64) (float64, error)
}

// FuncOf adapts fn to Func. NaN and ±Inf results become evaluation errors,
// matching the behaviour of parsed expressions.
func FuncOf(fn func(float64) float64) Func {
	return goFunc(fn)
}

type goFunc func(float64) float64

func (g goFunc) Eval(x float64) (float64, error) {
	y := g(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, &EvaluationError{Expr: "<func>", X: x, Err: ErrNonFinite}
	}
	return y, nil
}

// Safe evaluates f at x and substitutes Fallback on failure.
// ok reports whether the returned value is a real evaluation.
func Safe(f Func, x float64) (y float64, ok bool) {
	v, err := f.Eval(x)
	if err != nil {
		return Fallback, false
	}
	return v, true
}

// Value is Safe without the flag, for formulas that only need a number.
func Value(f Func, x float64) float64 {
	y, _ := Safe(f, x)
	return y
}

// Memoize wraps f with a per-call cache keyed by x.
//
// The cache has no eviction: create one per computation and drop it after.
// Not safe for concurrent use.
func Memoize(f Func) Func {
	return &memo{f: f, seen: make(map[float64]memoEntry)}
}

type memoEntry struct {
	y   float64
	err error
}

type memo struct {
	f    Func
	seen map[float64]memoEntry
}

func (m *memo) Eval(x float64) (float64, error) {
	if e, ok := m.seen[x]; ok {
		return e.y, e.err
	}
	y, err := m.f.Eval(x)
	m.seen[x] = memoEntry{y: y, err: err}
	return y, err
}
