// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is one (x, y) pair as consumed by a plotting surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a sampled function: Y[i] = f(X[i]), or 0 where f failed.
//
// Invariants:
//   - len(X) == len(Y) == len(Defined)
//   - Defined[i] == false ⇒ Y[i] == 0
//
// A Curve is built fresh per computation and never mutated afterwards.
type Curve struct {
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Defined []bool    `json:"defined"`
}

// newCurve allocates a curve of n points.
func newCurve(n int) Curve {
	return Curve{
		X:       make([]float64, n),
		Y:       make([]float64, n),
		Defined: make([]bool, n),
	}
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.X) }

// Undefined counts the samples that fell back to 0.
func (c Curve) Undefined() int {
	n := 0
	for _, ok := range c.Defined {
		if !ok {
			n++
		}
	}
	return n
}

// Points zips X and Y for plotting.
func (c Curve) Points() []Point {
	out := make([]Point, len(c.X))
	for i := range c.X {
		out[i] = Point{X: c.X[i], Y: c.Y[i]}
	}
	return out
}

// AbsDiff returns |c - other| pointwise. Both curves must share the same
// abscissae exactly; a point is defined only where both inputs are.
func (c Curve) AbsDiff(other Curve) (Curve, error) {
	if len(c.X) != len(other.X) || !floats.Equal(c.X, other.X) {
		return Curve{}, gridErrorf("AbsDiff", ErrGridMismatch)
	}

	out := newCurve(len(c.X))
	copy(out.X, c.X)
	for i := range c.X {
		if !c.Defined[i] || !other.Defined[i] {
			continue
		}
		out.Y[i] = math.Abs(c.Y[i] - other.Y[i])
		out.Defined[i] = true
	}
	return out, nil
}

// MaxAbs returns max |Y[i]| over defined points, 0 for an empty curve.
func (c Curve) MaxAbs() float64 {
	if len(c.Y) == 0 {
		return 0
	}
	return floats.Norm(c.Y, math.Inf(1))
}
