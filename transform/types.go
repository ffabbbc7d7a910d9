// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/grid"
)

const (
	// MaxDegree is the highest polynomial degree.
	MaxDegree = 4

	// LogOffset keeps log finite at t = 0.
	LogOffset = 1e-4

	// GridPoints and GridDivisor define the default abscissae (i - 500)/50.
	GridPoints  = 1000
	GridDivisor = 50
)

// Family selects the base function.
type Family int

const (
	Sin Family = iota
	Cos
	Tan
	Exp
	Log
	Polynomial
)

var familyNames = [...]string{"sin", "cos", "tan", "exp", "log", "polynomial"}

var (
	// ErrUnknownFamily indicates a Family outside Sin..Polynomial or an unknown name.
	ErrUnknownFamily = grid.ConfigError("transform: unknown family")

	// ErrDegree indicates more than MaxDegree+1 polynomial coefficients.
	ErrDegree = grid.ConfigError(fmt.Sprintf("transform: polynomial degree above %d", MaxDegree))
)

func (f Family) valid() bool { return f >= Sin && f <= Polynomial }

// String returns the lower-case family name.
func (f Family) String() string {
	if !f.valid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// MarshalText encodes the family name.
func (f Family) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, ErrUnknownFamily
	}
	return []byte(familyNames[f]), nil
}

// ParseFamily maps a family name to a Family.
func ParseFamily(s string) (Family, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFamily)
}

// Params are the four transformation parameters of
// g(x) = C·base(A·(x - B)) + D.
type Params struct {
	A float64 `json:"a"` // horizontal scale
	B float64 `json:"b"` // horizontal shift
	C float64 `json:"c"` // vertical scale
	D float64 `json:"d"` // vertical shift
}

// Identity returns the parameters that leave the base function unchanged.
func Identity() Params { return Params{A: 1, C: 1} }

// Result holds a transformed function and its derivative on one grid.
type Result struct {
	Family     Family     `json:"family"`
	Label      string     `json:"label"`
	Function   grid.Curve `json:"function"`
	Derivative grid.Curve `json:"derivative"`
}
