// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/lvcalc/quadrature"
	"github.com/katalvlaran/lvcalc/revolution"
	"github.com/katalvlaran/lvcalc/transform"
)

// SampleParams describes one curve over [Min, Max].
type SampleParams struct {
	Expr  string  `json:"expr"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Steps int     `json:"steps"`
}

// IntegralParams describes ∫_A^B Expr dx over N subintervals.
// Method is ignored by CompareIntegrals.
type IntegralParams struct {
	Expr   string            `json:"expr"`
	A      float64           `json:"a"`
	B      float64           `json:"b"`
	N      int               `json:"n"`
	Method quadrature.Method `json:"method"`
}

// TaylorParams describes a Taylor polynomial of Expr around Center, drawn
// with its error curve on the grid [Min, Max] of Steps points.
type TaylorParams struct {
	Expr   string  `json:"expr"`
	Center float64 `json:"center"`
	Order  int     `json:"order"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Steps  int     `json:"steps"`
	Terms  bool    `json:"terms"` // also sample every term
}

// LimitParams describes a limit probe of Expr at Point.
type LimitParams struct {
	Expr    string  `json:"expr"`
	Point   float64 `json:"point"`
	Epsilon float64 `json:"epsilon"`
}

// VolumeParams describes the solid swept by Expr over [Start, End].
// CrossSection is drawn only when WithSection is set.
type VolumeParams struct {
	Expr         string          `json:"expr"`
	Start        float64         `json:"start"`
	End          float64         `json:"end"`
	Steps        int             `json:"steps"`
	Resolution   int             `json:"resolution"`
	Axis         revolution.Axis `json:"axis"`
	WithSection  bool            `json:"withSection"`
	CrossSection float64         `json:"crossSection"`
}

// TransformParams describes C·base(A·(x - B)) + D. A zero Steps selects
// transform.Grid; otherwise the grid is [Min, Max] with Steps points.
type TransformParams struct {
	Family       transform.Family `json:"family"`
	Params       transform.Params `json:"params"`
	Coefficients []float64        `json:"coefficients,omitempty"`
	Min          float64          `json:"min"`
	Max          float64          `json:"max"`
	Steps        int              `json:"steps"`
}
