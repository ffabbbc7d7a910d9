package expr_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Polynomial checks caret-as-power and plain arithmetic.
func TestParse_Polynomial(t *testing.T) {
	f, err := expr.Parse("x^2 + 2*x + 1")
	require.NoError(t, err)

	y, err := f.Eval(3)
	require.NoError(t, err)
	assert.InDelta(t, 16.0, y, 1e-12)
	assert.Equal(t, "x^2 + 2*x + 1", f.String())
}

// TestParse_Functions evaluates every registered function once.
func TestParse_Functions(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"sin(x)", math.Pi / 2, 1},
		{"cos(x)", 0, 1},
		{"tan(x)", 0, 0},
		{"exp(x)", 1, math.E},
		{"log(x)", math.E, 1},
		{"ln(x)", 1, 0},
		{"sqrt(x)", 9, 3},
		{"abs(x)", -2.5, 2.5},
		{"pow(x, 3)", 2, 8},
		{"floor(x) + ceil(x)", 1.5, 3},
		{"sin(pi/2) + e - e", 0, 1},
	}
	for _, c := range cases {
		y, err := expr.Evaluate(c.src, c.x)
		require.NoError(t, err, c.src)
		assert.InDelta(t, c.want, y, 1e-12, c.src)
	}
}

// TestParse_Errors covers empty input, syntax errors and stray identifiers.
func TestParse_Errors(t *testing.T) {
	_, err := expr.Parse("   ")
	assert.ErrorIs(t, err, expr.ErrParse)
	assert.ErrorIs(t, err, expr.ErrEmpty)

	_, err = expr.Parse("(x + 1")
	assert.ErrorIs(t, err, expr.ErrParse)

	_, err = expr.Parse("y + 1")
	assert.ErrorIs(t, err, expr.ErrParse)
	assert.ErrorIs(t, err, expr.ErrUnknownIdentifier)

	var pe *expr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "y + 1", pe.Expr)
	assert.False(t, errors.Is(err, expr.ErrEvaluation), "parse errors are not evaluation errors")
}

// TestEval_PointFailures covers domain errors and non-finite results.
func TestEval_PointFailures(t *testing.T) {
	logf := expr.MustParse("log(x)")
	_, err := logf.Eval(-1)
	assert.ErrorIs(t, err, expr.ErrEvaluation)
	assert.ErrorIs(t, err, expr.ErrDomain)

	var ee *expr.EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, -1.0, ee.X)
	assert.Equal(t, "log(x)", ee.Expr)

	_, err = expr.MustParse("1/x").Eval(0)
	assert.ErrorIs(t, err, expr.ErrNonFinite)

	_, err = expr.MustParse("abs(x)/x").Eval(0)
	assert.ErrorIs(t, err, expr.ErrNonFinite)

	_, err = expr.MustParse("sqrt(x)").Eval(-4)
	assert.ErrorIs(t, err, expr.ErrDomain)

	_, err = expr.MustParse("x > 1").Eval(2)
	assert.ErrorIs(t, err, expr.ErrNotNumeric)

	_, err = expr.MustParse("sin(x, x)").Eval(2)
	assert.ErrorIs(t, err, expr.ErrArity)
}

// TestSafe_Fallback verifies the zero substitution and the ok flag.
func TestSafe_Fallback(t *testing.T) {
	f := expr.MustParse("log(x)")

	y, ok := expr.Safe(f, -3)
	assert.False(t, ok)
	assert.Equal(t, expr.Fallback, y)

	y, ok = expr.Safe(f, 1)
	assert.True(t, ok)
	assert.Equal(t, 0.0, y)

	assert.InDelta(t, 1.0, expr.Value(f, math.E), 1e-12)
}

// TestFuncOf_NonFinite ensures adapted Go functions follow the same policy.
func TestFuncOf_NonFinite(t *testing.T) {
	f := expr.FuncOf(func(x float64) float64 { return 1 / x })

	_, err := f.Eval(0)
	assert.ErrorIs(t, err, expr.ErrNonFinite)

	y, err := f.Eval(4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, y)
}

// TestMemoize_CallsOncePerPoint counts underlying evaluations.
func TestMemoize_CallsOncePerPoint(t *testing.T) {
	calls := 0
	f := expr.Memoize(expr.FuncOf(func(x float64) float64 {
		calls++
		return x * x
	}))

	for i := 0; i < 3; i++ {
		y, err := f.Eval(2)
		require.NoError(t, err)
		assert.Equal(t, 4.0, y)
	}
	_, _ = f.Eval(3)
	assert.Equal(t, 2, calls)
}

// TestEval_Deterministic checks repeated and concurrent evaluations agree bitwise.
func TestEval_Deterministic(t *testing.T) {
	f := expr.MustParse("sin(x) * exp(-x^2) + sqrt(abs(x))")
	want, err := f.Eval(0.7)
	require.NoError(t, err)

	var wg sync.WaitGroup
	const workers = 16
	got := make([]float64, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			got[i], _ = f.Eval(0.7)
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, want, got[i], "worker %d", i)
	}
}

// TestCanonical normalises spacing, case and the ** spelling.
func TestCanonical(t *testing.T) {
	assert.Equal(t, "sin(x)", expr.Canonical(" SIN( x ) "))
	assert.Equal(t, "x^2", expr.Canonical("x ** 2"))
	assert.Equal(t, "x^2+1", expr.MustParse("x^2 + 1").Canonical())
}

// TestParse_CaretRightAssociative: chained powers nest to the right.
func TestParse_CaretRightAssociative(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"2^3^2", 0, 512},
		{"2^x^2", 1, 2},
		{"2^x^2", 2, 16},
		{"x^2^3 + 1", 2, 257},
		{"(x + 1)^2^0.5", 3, math.Pow(4, math.Sqrt2)},
		{"2^abs(x)^2", -3, 512},
		{"x^2 * 3^2", 2, 36},
		{"2 ^ 3 ^ 2", 0, 512},
	}
	for _, c := range cases {
		y, err := expr.Evaluate(c.src, c.x)
		require.NoError(t, err, c.src)
		assert.InDelta(t, c.want, y, 1e-9, c.src)
	}
	assert.Equal(t, "2^3^2", expr.MustParse("2^3^2").String())
}

// TestParse_ExponentLiterals expands 1e-3 style numbers.
func TestParse_ExponentLiterals(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"1e-3*x", 2, 0.002},
		{"2.5E2 + x", 1, 251},
		{".5e1 * x", 2, 10},
		{"x^2 + 1e+2", 3, 109},
		{"exp(x) * 1e0", 0, 1},
		{"e*2", 0, 2 * math.E},
	}
	for _, c := range cases {
		y, err := expr.Evaluate(c.src, c.x)
		require.NoError(t, err, c.src)
		assert.InDelta(t, c.want, y, 1e-12, c.src)
	}
}
