package revolution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
	"github.com/katalvlaran/lvcalc/revolution"
)

func TestVolume_Disk(t *testing.T) {
	v, err := revolution.Volume(expr.MustParse("x^2"), 0, 1, revolution.DefaultSteps, revolution.AxisX)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/5, v, 5e-3)

	// cylinder of radius 2 and length 3 is exact for any step count
	v, err = revolution.Volume(expr.MustParse("2"), 0, 3, 7, revolution.AxisX)
	require.NoError(t, err)
	assert.InDelta(t, 12*math.Pi, v, 1e-9)
}

func TestVolume_Shell(t *testing.T) {
	v, err := revolution.Volume(expr.MustParse("1"), 0, 1, revolution.DefaultSteps, revolution.AxisY)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v, 5e-3)
	assert.InDelta(t, math.Pi*(1-1.0/revolution.DefaultSteps), v, 1e-12)
}

// TestVolume_Absolute reports reversed bounds as a positive volume.
func TestVolume_Absolute(t *testing.T) {
	f := expr.MustParse("x + 1")
	fw, err := revolution.Volume(f, 0, 2, 1000, revolution.AxisX)
	require.NoError(t, err)
	bw, err := revolution.Volume(f, 2, 0, 1000, revolution.AxisX)
	require.NoError(t, err)
	assert.Greater(t, bw, 0.0)
	assert.InDelta(t, fw, bw, 0.5)
}

func TestVolume_Errors(t *testing.T) {
	f := expr.MustParse("x")
	_, err := revolution.Volume(f, 0, 1, 0, revolution.AxisX)
	assert.ErrorIs(t, err, revolution.ErrNoSteps)
	assert.ErrorIs(t, err, grid.ErrInvalidConfig)

	_, err = revolution.Volume(f, 0, 1, 10, revolution.Axis(3))
	assert.ErrorIs(t, err, revolution.ErrUnknownAxis)

	_, err = revolution.Volume(f, math.NaN(), 1, 10, revolution.AxisX)
	assert.ErrorIs(t, err, grid.ErrNonFinite)

	_, err = revolution.Surface(f, 0, 1, 0, revolution.AxisX)
	assert.ErrorIs(t, err, revolution.ErrBadResolution)

	_, err = revolution.CrossSection(f, 0, 4, revolution.Axis(-1))
	assert.ErrorIs(t, err, revolution.ErrUnknownAxis)
}

func TestSurface_AboutX(t *testing.T) {
	m, err := revolution.Surface(expr.MustParse("x^2"), 0, 2, 4, revolution.AxisX)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Rows)
	assert.Equal(t, 5, m.Cols)
	require.Len(t, m.Points, 25)

	for i := 0; i < m.Rows; i++ {
		x := 0.5 * float64(i)
		first := m.At(i, 0)
		assert.InDelta(t, x, first.X, 1e-12)
		assert.InDelta(t, x*x, first.Y, 1e-12)
		assert.InDelta(t, 0, first.Z, 1e-12)
		for j := 0; j < m.Cols; j++ {
			p := m.At(i, j)
			assert.InDelta(t, x*x, r3.Norm(r3.Vec{Y: p.Y, Z: p.Z}), 1e-12)
		}
		last := m.At(i, m.Cols-1)
		assert.InDelta(t, first.Y, last.Y, 1e-12)
	}

	xs, ys, zs := m.XYZ()
	assert.Len(t, xs, 25)
	assert.Len(t, ys, 25)
	assert.Len(t, zs, 25)
}

func TestCrossSection_AboutY(t *testing.T) {
	m, err := revolution.CrossSection(expr.MustParse("x^2"), 2, 8, revolution.AxisY)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows)
	require.Len(t, m.Points, 9)
	for _, p := range m.Points {
		assert.InDelta(t, 4.0, p.Z, 1e-12)
		assert.InDelta(t, 2.0, r3.Norm(r3.Vec{X: p.X, Y: p.Y}), 1e-12)
	}
}

func TestParseAxis(t *testing.T) {
	a, err := revolution.ParseAxis(" Y ")
	require.NoError(t, err)
	assert.Equal(t, revolution.AxisY, a)
	_, err = revolution.ParseAxis("z")
	assert.ErrorIs(t, err, revolution.ErrUnknownAxis)
	assert.Equal(t, "x", revolution.AxisX.String())
}
