// SPDX-License-Identifier: MIT

package grid_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpan_Shape verifies length, monotonicity and exact endpoints.
func TestSpan_Shape(t *testing.T) {
	for _, tc := range []struct {
		lo, hi float64
		steps  int
	}{
		{-5, 5, 100},
		{0, 1, 2},
		{-0.3, 0.7, 7},
		{1e-3, 2e-3, 1000},
	} {
		xs, err := grid.Span(tc.lo, tc.hi, tc.steps)
		require.NoError(t, err)
		require.Len(t, xs, tc.steps)
		assert.Equal(t, tc.lo, xs[0])
		assert.Equal(t, tc.hi, xs[tc.steps-1])
		for i := 1; i < len(xs); i++ {
			require.Less(t, xs[i-1], xs[i], "strictly increasing at %d", i)
		}
		// matches x_i = min + i*(max-min)/(N-1) within rounding
		for i, x := range xs {
			want := tc.lo + float64(i)*(tc.hi-tc.lo)/float64(tc.steps-1)
			assert.InDelta(t, want, x, 1e-12*math.Max(1, math.Abs(want)))
		}
	}
}

// TestSpan_InvalidConfig checks each precondition maps to its sentinel.
func TestSpan_InvalidConfig(t *testing.T) {
	_, err := grid.Span(0, 1, 1)
	assert.ErrorIs(t, err, grid.ErrTooFewSteps)
	assert.ErrorIs(t, err, grid.ErrInvalidConfig)

	_, err = grid.Span(1, 1, 10)
	assert.ErrorIs(t, err, grid.ErrEmptyRange)

	_, err = grid.Span(2, 1, 10)
	assert.ErrorIs(t, err, grid.ErrEmptyRange)

	_, err = grid.Span(math.NaN(), 1, 10)
	assert.ErrorIs(t, err, grid.ErrNonFinite)
	assert.False(t, errors.Is(err, expr.ErrEvaluation))
}

// TestSample_LogFallback samples log(x) over [-5, 5]: no error, zeros left of 0.
func TestSample_LogFallback(t *testing.T) {
	c, err := grid.Sample(expr.MustParse("log(x)"), -5, 5, 100)
	require.NoError(t, err)
	require.Equal(t, 100, c.Len())

	for i, x := range c.X {
		if x <= 0 {
			assert.Equal(t, 0.0, c.Y[i], "x=%g", x)
			assert.False(t, c.Defined[i], "x=%g", x)
		} else {
			assert.InDelta(t, math.Log(x), c.Y[i], 1e-12)
			assert.True(t, c.Defined[i])
		}
	}
	assert.Equal(t, 50, c.Undefined())
}

// TestSample_Deterministic ensures identical inputs produce identical curves.
func TestSample_Deterministic(t *testing.T) {
	f := expr.MustParse("sin(x)/x")
	a, err := grid.Sample(f, -3, 3, 301)
	require.NoError(t, err)
	b, err := grid.Sample(f, -3, 3, 301)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSampleParallel_MatchesSequential compares both paths bitwise.
func TestSampleParallel_MatchesSequential(t *testing.T) {
	f := expr.MustParse("x^3 - 2*x + log(x)")
	seq, err := grid.Sample(f, -2, 2, 1001)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 8, 2000} {
		par, err := grid.SampleParallel(context.Background(), f, -2, 2, 1001, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, seq, par, "workers=%d", workers)
	}
}

// TestSampleParallel_Errors covers worker validation and cancellation.
func TestSampleParallel_Errors(t *testing.T) {
	f := expr.MustParse("x")

	_, err := grid.SampleParallel(context.Background(), f, 0, 1, 10, 0)
	assert.ErrorIs(t, err, grid.ErrBadWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = grid.SampleParallel(ctx, f, 0, 1, 10, 4)
	assert.ErrorIs(t, err, context.Canceled)

	// the single-worker path runs inline and still observes ctx
	_, err = grid.SampleParallel(ctx, f, 0, 1, 10, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSampleAt_CopiesInput guards against aliasing the caller's slice.
func TestSampleAt_CopiesInput(t *testing.T) {
	xs := []float64{1, 2, 3}
	c := grid.SampleAt(expr.MustParse("2*x"), xs)
	xs[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, c.X)
	assert.Equal(t, []float64{2, 4, 6}, c.Y)
}

// TestCurve_AbsDiffAndMax checks error-curve helpers.
func TestCurve_AbsDiffAndMax(t *testing.T) {
	a := grid.SampleAt(expr.MustParse("x^2"), []float64{-1, 0, 1})
	b := grid.SampleAt(expr.MustParse("x"), []float64{-1, 0, 1})

	d, err := a.AbsDiff(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 0}, d.Y)
	assert.Equal(t, 2.0, d.MaxAbs())

	c := grid.SampleAt(expr.MustParse("x"), []float64{-1, 0, 2})
	_, err = a.AbsDiff(c)
	assert.ErrorIs(t, err, grid.ErrGridMismatch)

	assert.Equal(t, []grid.Point{{X: -1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}}, a.Points())
}
