package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcalc/grid"
	"github.com/katalvlaran/lvcalc/vector"
)

var (
	i = r3.Vec{X: 1}
	j = r3.Vec{Y: 1}
	k = r3.Vec{Z: 1}
)

func TestBasics(t *testing.T) {
	a, b := r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 4, Y: 5, Z: 6}

	assert.Equal(t, r3.Vec{X: -3, Y: 6, Z: -3}, vector.Cross(a, b))
	assert.Equal(t, 32.0, vector.Dot(a, b))
	assert.InDelta(t, math.Sqrt(14), vector.Magnitude(a), 1e-15)
	assert.Equal(t, r3.Vec{X: 2, Y: 4, Z: 6}, vector.Scale(2, a))
	assert.Equal(t, r3.Vec{X: 5, Y: 7, Z: 9}, vector.Add(a, b))

	assert.Equal(t, k, vector.Cross(i, j))
	assert.Equal(t, 1.0, vector.Triple(i, j, k))
	assert.Equal(t, -1.0, vector.Triple(j, i, k))
	assert.Equal(t, 0.0, vector.Triple(a, b, vector.Add(a, b)))
}

func TestProjection(t *testing.T) {
	p, err := vector.Projection(r3.Vec{X: 3, Y: 4}, i)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 3}, p)

	_, err = vector.Projection(i, r3.Vec{})
	assert.ErrorIs(t, err, vector.ErrZeroVector)
	assert.ErrorIs(t, err, grid.ErrInvalidConfig)
}

func TestAngle(t *testing.T) {
	a, err := vector.Angle(i, j)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, a, 1e-15)

	a, err = vector.Angle(i, vector.Scale(-3, i))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, a, 1e-15)

	_, err = vector.Angle(r3.Vec{}, i)
	assert.ErrorIs(t, err, vector.ErrZeroVector)
}

func TestAnalyze(t *testing.T) {
	a, b := r3.Vec{X: 2}, r3.Vec{X: 1, Y: 3}
	res, err := vector.Analyze(a, b)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Area)
	assert.Equal(t, r3.Vec{Z: 6}, res.Cross)
	assert.Equal(t, r3.Vec{X: 3, Y: 3}, res.Sum)
	assert.Equal(t, [5]r3.Vec{{}, a, {X: 3, Y: 3}, b, {}}, res.Corners)
	assert.InDelta(t, 0.2, res.Projection.X, 1e-15)
	assert.InDelta(t, 0.6, res.Projection.Y, 1e-15)

	_, err = vector.Analyze(a, r3.Vec{})
	assert.ErrorIs(t, err, vector.ErrZeroVector)
}

func TestParse(t *testing.T) {
	v, err := vector.Parse(" 1, -2.5 ,3e1")
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 1, Y: -2.5, Z: 30}, v)

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		_, err := vector.Parse(bad)
		assert.ErrorIs(t, err, vector.ErrBadVector, bad)
	}
	_, err = vector.Parse("1,2,NaN")
	assert.ErrorIs(t, err, grid.ErrNonFinite)
}
