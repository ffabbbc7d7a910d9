package deriv

import "github.com/katalvlaran/lvcalc/grid"

const (
	// DefaultStep is the forward-difference step h.
	DefaultStep = 1e-4

	// DefaultTangentHalfWidth is the distance from the point of tangency to
	// each drawn endpoint of the tangent line.
	DefaultTangentHalfWidth = 2.0

	// DefaultCentralStep is the central-difference step used for whole
	// derivative curves.
	DefaultCentralStep = 0.01
)

// DefaultSecantSteps returns the secant offsets shown next to a tangent,
// from coarse to fine. A fresh slice is returned on each call.
func DefaultSecantSteps() []float64 { return []float64{0.5, 0.2, 0.1} }

// ErrBadStep indicates a step h that is zero, negative, NaN or ±Inf.
var ErrBadStep = grid.ConfigError("deriv: step must be finite and > 0")

// ErrBadWidth indicates a non-positive or non-finite tangent half width.
var ErrBadWidth = grid.ConfigError("deriv: tangent half width must be finite and > 0")

// Line is a straight segment for plotting: the anchor point, its slope and
// the two drawn endpoints.
type Line struct {
	X0    float64    `json:"x0"`
	Y0    float64    `json:"y0"`
	Slope float64    `json:"slope"`
	Step  float64    `json:"step,omitempty"`
	X     [2]float64 `json:"x"`
	Y     [2]float64 `json:"y"`
}

// At evaluates the line at t.
func (l Line) At(t float64) float64 { return l.Y0 + l.Slope*(t-l.X0) }
