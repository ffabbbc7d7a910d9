package limit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcalc/grid"
)

const (
	// Samples is the number of points drawn on each side.
	Samples = 20

	// Subdivision is the number of probe steps per epsilon.
	Subdivision = 10

	// ApproachDivisor places the limit estimate at point ± epsilon/ApproachDivisor.
	ApproachDivisor = 100

	// DefaultTolerance bounds |left - right| for a limit to exist.
	DefaultTolerance = 1e-4
)

// ErrBadEpsilon indicates an epsilon that is not finite and > 0.
var ErrBadEpsilon = grid.ConfigError("limit: epsilon must be finite and > 0")

// Result is one limit probe.
type Result struct {
	Point        float64    `json:"point"`
	Epsilon      float64    `json:"epsilon"`
	Left         grid.Curve `json:"left"`
	Right        grid.Curve `json:"right"`
	LeftLimit    float64    `json:"leftLimit"`
	RightLimit   float64    `json:"rightLimit"`
	Value        float64    `json:"value"`
	ValueDefined bool       `json:"valueDefined"`
	Exists       bool       `json:"exists"`
	Continuous   bool       `json:"continuous"`
	Tolerance    float64    `json:"tolerance"`
	Extrapolated bool       `json:"extrapolated"`
}

// Option configures Probe.
type Option func(*options)

type options struct {
	tolerance float64
	direct    bool
}

// WithTolerance sets the agreement tolerance. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(fmt.Sprintf("limit: WithTolerance(%g): tolerance must be finite and > 0", tol))
	}
	return func(o *options) { o.tolerance = tol }
}

// WithDirect uses the single samples f(point ± epsilon/100) as the limits.
func WithDirect() Option { return func(o *options) { o.direct = true } }
