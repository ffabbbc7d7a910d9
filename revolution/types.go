package revolution

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcalc/grid"
)

const (
	// DefaultSteps is the number of Riemann slices used for the volume.
	DefaultSteps = 1000

	// DefaultResolution is the number of subdivisions along x and around
	// the axis used for meshes.
	DefaultResolution = 50
)

// Axis is the axis of rotation.
type Axis int

const (
	// AxisX rotates the curve about the x axis (disks).
	AxisX Axis = iota
	// AxisY rotates the curve about the y axis (shells).
	AxisY
)

var (
	// ErrNoSteps indicates fewer than one slice.
	ErrNoSteps = grid.ConfigError("revolution: at least one step required")

	// ErrBadResolution indicates a mesh resolution below one.
	ErrBadResolution = grid.ConfigError("revolution: resolution must be >= 1")

	// ErrUnknownAxis indicates an axis other than AxisX or AxisY.
	ErrUnknownAxis = grid.ConfigError("revolution: unknown axis")
)

// String returns "x" or "y".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// MarshalText encodes the axis name.
func (a Axis) MarshalText() ([]byte, error) {
	if a != AxisX && a != AxisY {
		return nil, ErrUnknownAxis
	}
	return []byte(a.String()), nil
}

// ParseAxis maps "x" or "y" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAxis)
}

// Mesh is a grid of 3-D points in row-major order: Rows samples along the
// generating curve, Cols samples around the axis.
type Mesh struct {
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Points []r3.Vec `json:"points"`
}

// At returns the point of row i, column j.
func (m Mesh) At(i, j int) r3.Vec { return m.Points[i*m.Cols+j] }

// XYZ splits the points into coordinate slices for plotting.
func (m Mesh) XYZ() (xs, ys, zs []float64) {
	xs = make([]float64, len(m.Points))
	ys = make([]float64, len(m.Points))
	zs = make([]float64, len(m.Points))
	for i, p := range m.Points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}
