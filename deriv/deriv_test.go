package deriv_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcalc/deriv"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForward_Square checks d/dx x^2 at 3 ≈ 6.
func TestForward_Square(t *testing.T) {
	d, err := deriv.Forward(expr.MustParse("x^2"), 3, deriv.DefaultStep)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, d, 1e-2)
	// forward difference bias is exactly h for x^2
	assert.InDelta(t, 6.0+deriv.DefaultStep, d, 1e-6)
}

// TestForward_BadParams rejects invalid steps and points.
func TestForward_BadParams(t *testing.T) {
	f := expr.MustParse("x")
	for _, h := range []float64{0, -1e-4, math.NaN(), math.Inf(1)} {
		_, err := deriv.Forward(f, 1, h)
		assert.ErrorIs(t, err, deriv.ErrBadStep, "h=%g", h)
		assert.ErrorIs(t, err, grid.ErrInvalidConfig)
	}
	_, err := deriv.Forward(f, math.NaN(), 1e-4)
	assert.ErrorIs(t, err, grid.ErrNonFinite)
}

// TestForward_SilentFallback documents that undefined stencil points are not detected.
func TestForward_SilentFallback(t *testing.T) {
	// log is undefined at 0 and defined at h: (log(h) - 0) / h
	d, err := deriv.Forward(expr.MustParse("log(x)"), 0, deriv.DefaultStep)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(deriv.DefaultStep)/deriv.DefaultStep, d, 1e-9)
}

// TestTangent_Endpoints verifies y = f(x) + f'(x)(t-x) at x±2.
func TestTangent_Endpoints(t *testing.T) {
	f := expr.MustParse("x^2")
	l, err := deriv.Tangent(f, 1, deriv.DefaultStep, deriv.DefaultTangentHalfWidth)
	require.NoError(t, err)

	assert.Equal(t, [2]float64{-1, 3}, l.X)
	assert.InDelta(t, 1.0, l.Y0, 1e-12)
	assert.InDelta(t, 2.0, l.Slope, 1e-3)
	assert.InDelta(t, 1+l.Slope*(-2), l.Y[0], 1e-12)
	assert.InDelta(t, 1+l.Slope*2, l.Y[1], 1e-12)

	_, err = deriv.Tangent(f, 1, deriv.DefaultStep, 0)
	assert.ErrorIs(t, err, deriv.ErrBadWidth)
}

// TestSecants_Slopes checks chord slopes for x^2: 2x + h.
func TestSecants_Slopes(t *testing.T) {
	lines, err := deriv.Secants(expr.MustParse("x^2"), 2, deriv.DefaultSecantSteps())
	require.NoError(t, err)
	require.Len(t, lines, 3)

	for i, h := range []float64{0.5, 0.2, 0.1} {
		assert.InDelta(t, 4+h, lines[i].Slope, 1e-9)
		assert.Equal(t, [2]float64{2, 2 + h}, lines[i].X)
		assert.InDelta(t, (2+h)*(2+h), lines[i].Y[1], 1e-12)
	}

	_, err = deriv.Secants(expr.MustParse("x"), 0, []float64{0.1, -1})
	assert.ErrorIs(t, err, deriv.ErrBadStep)
}

// TestCentral_Sine compares the central difference with cos.
func TestCentral_Sine(t *testing.T) {
	f := expr.MustParse("sin(x)")
	for _, x := range []float64{-2, 0, 0.5, 3} {
		d, err := deriv.Central(f, x, 1e-3)
		require.NoError(t, err)
		assert.InDelta(t, math.Cos(x), d, 1e-6, "x=%g", x)
	}
}

// TestCurve_DefinedMask marks points whose stencil leaves the domain.
func TestCurve_DefinedMask(t *testing.T) {
	c, err := deriv.Curve(expr.MustParse("log(x)"), []float64{-1, 0.005, 0.5, 2}, deriv.DefaultCentralStep)
	require.NoError(t, err)

	assert.Equal(t, []bool{false, false, true, true}, c.Defined)
	assert.Equal(t, 0.0, c.Y[0])
	assert.InDelta(t, 2.0, c.Y[2], 1e-3)
	assert.InDelta(t, 0.5, c.Y[3], 1e-4)

	_, err = deriv.Curve(expr.MustParse("x"), []float64{0}, 0)
	assert.ErrorIs(t, err, deriv.ErrBadStep)
}
