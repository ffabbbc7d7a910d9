// SPDX-License-Identifier: MIT

package taylor

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvcalc/grid"
)

const (
	// MaxOrder is the highest supported order (number of terms). 20! is still an
	// exact float64 and higher finite differences are pure noise anyway.
	MaxOrder = 20

	// DefaultStep is the base step h of the Generic finite differences.
	DefaultStep = 1e-4
)

// ErrOrderRange indicates an order outside [1, MaxOrder].
var ErrOrderRange = grid.ConfigError(fmt.Sprintf("taylor: order must be in [1, %d]", MaxOrder))

// ErrBadStep indicates a non-positive or non-finite difference step.
var ErrBadStep = grid.ConfigError("taylor: step must be finite and > 0")

// Family selects how derivatives at the centre are obtained.
type Family int

const (
	// Generic uses iterated forward differences.
	Generic Family = iota
	// Sin is sin(x).
	Sin
	// Cos is cos(x).
	Cos
	// Exp is exp(x).
	Exp
	// Ln is the natural logarithm.
	Ln
)

var familyNames = [...]string{"generic", "sin", "cos", "exp", "ln"}

// canonicalFamilies maps canonical sources to their family.
var canonicalFamilies = map[string]Family{
	"sin(x)": Sin,
	"cos(x)": Cos,
	"exp(x)": Exp,
	"e^x":    Exp,
	"ln(x)":  Ln,
	"log(x)": Ln,
}

// String returns the lower-case family name.
func (f Family) String() string {
	if f < Generic || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// MarshalText encodes the family name.
func (f Family) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// ParseFamily maps a family name to a Family; unknown names map to Generic.
func ParseFamily(s string) Family {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range familyNames {
		if n == name {
			return Family(i)
		}
	}
	if name == "log" {
		return Ln
	}
	return Generic
}

// Approximation is a sampled Taylor polynomial.
//
// All curves share the abscissae of Approx. Original, Error and Terms are
// present only when requested through options.
type Approximation struct {
	X0           float64      `json:"x0"`
	Order        int          `json:"order"`
	Family       Family       `json:"family"`
	Coefficients []float64    `json:"coefficients"` // c_k = f^(k)(x0)/k!, k = 0..Order-1
	Approx       grid.Curve   `json:"approx"`
	Original     *grid.Curve  `json:"original,omitempty"`
	Error        *grid.Curve  `json:"error,omitempty"` // |Original - Approx|
	MaxError     float64      `json:"maxError,omitempty"`
	Terms        []grid.Curve `json:"terms,omitempty"` // c_k·(x-x0)^k per k
}

// Option configures Build.
type Option func(*options)

type options struct {
	step     float64
	original bool
	errCurve bool
	terms    bool
}

func defaultOptions() options { return options{step: DefaultStep} }

// WithStep sets the base step of Generic finite differences.
// Panics if h is not finite and > 0.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(fmt.Sprintf("taylor: WithStep(%g): step must be finite and > 0", h))
	}
	return func(o *options) { o.step = h }
}

// WithOriginal also samples f on the same grid.
func WithOriginal() Option { return func(o *options) { o.original = true } }

// WithError samples f and the pointwise |f - P_n|. Implies WithOriginal.
func WithError() Option {
	return func(o *options) {
		o.original = true
		o.errCurve = true
	}
}

// WithTerms samples every term c_k·(x-x0)^k separately.
func WithTerms() Option { return func(o *options) { o.terms = true } }
