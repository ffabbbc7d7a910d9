package revolution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
)

func validateAxis(axis Axis) error {
	if axis != AxisX && axis != AxisY {
		return ErrUnknownAxis
	}
	return nil
}

// Volume returns the absolute volume of the solid swept by f over
// [start, end] about axis, as a left Riemann sum of steps slices.
//
// Errors: grid.ErrNonFinite, ErrNoSteps, ErrUnknownAxis.
func Volume(f expr.Func, start, end float64, steps int, axis Axis) (float64, error) {
	if err := grid.ValidateFinite(start, end); err != nil {
		return 0, fmt.Errorf("Volume: %w", err)
	}
	if steps < 1 {
		return 0, fmt.Errorf("Volume: %w", ErrNoSteps)
	}
	if err := validateAxis(axis); err != nil {
		return 0, fmt.Errorf("Volume: %w", err)
	}

	dx := (end - start) / float64(steps)
	var v float64
	for i := 0; i < steps; i++ {
		x := start + float64(i)*dx
		y := expr.Value(f, x)
		if axis == AxisX {
			v += math.Pi * y * y * dx
		} else {
			v += 2 * math.Pi * x * y * dx
		}
	}

	return math.Abs(v), nil
}

// ring returns resolution+1 points of the circle swept by (x, y) about axis;
// the last point repeats the first.
func ring(x, y float64, resolution int, axis Axis) []r3.Vec {
	out := make([]r3.Vec, resolution+1)
	dt := 2 * math.Pi / float64(resolution)
	for j := range out {
		sin, cos := math.Sincos(float64(j) * dt)
		if axis == AxisX {
			out[j] = r3.Vec{X: x, Y: y * cos, Z: y * sin}
		} else {
			out[j] = r3.Vec{X: x * cos, Y: x * sin, Z: y}
		}
	}
	return out
}

// Surface returns the (resolution+1)×(resolution+1) mesh of the solid's
// surface: row i is the ring through x_i = start + i·(end-start)/resolution.
//
// Errors: grid.ErrNonFinite, ErrBadResolution, ErrUnknownAxis.
func Surface(f expr.Func, start, end float64, resolution int, axis Axis) (Mesh, error) {
	if err := grid.ValidateFinite(start, end); err != nil {
		return Mesh{}, fmt.Errorf("Surface: %w", err)
	}
	if resolution < 1 {
		return Mesh{}, fmt.Errorf("Surface: %w", ErrBadResolution)
	}
	if err := validateAxis(axis); err != nil {
		return Mesh{}, fmt.Errorf("Surface: %w", err)
	}

	n := resolution + 1
	m := Mesh{Rows: n, Cols: n, Points: make([]r3.Vec, 0, n*n)}
	step := (end - start) / float64(resolution)
	for i := 0; i < n; i++ {
		x := start + float64(i)*step
		m.Points = append(m.Points, ring(x, expr.Value(f, x), resolution, axis)...)
	}

	return m, nil
}

// CrossSection returns the single ring of the solid at x = position.
//
// Errors: grid.ErrNonFinite, ErrBadResolution, ErrUnknownAxis.
func CrossSection(f expr.Func, position float64, resolution int, axis Axis) (Mesh, error) {
	if err := grid.ValidateFinite(position); err != nil {
		return Mesh{}, fmt.Errorf("CrossSection: %w", err)
	}
	if resolution < 1 {
		return Mesh{}, fmt.Errorf("CrossSection: %w", ErrBadResolution)
	}
	if err := validateAxis(axis); err != nil {
		return Mesh{}, fmt.Errorf("CrossSection: %w", err)
	}

	pts := ring(position, expr.Value(f, position), resolution, axis)
	return Mesh{Rows: 1, Cols: len(pts), Points: pts}, nil
}
