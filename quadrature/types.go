// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/grid"
)

// Method selects a quadrature rule.
type Method int

const (
	// Left evaluates each subinterval at its left endpoint.
	Left Method = iota

	// Right evaluates each subinterval at its right endpoint.
	Right

	// Midpoint evaluates each subinterval at its centre.
	Midpoint

	// Trapezoid averages both endpoints of each subinterval.
	Trapezoid
)

// numMethods is the number of defined rules.
const numMethods = 4

// ReferenceNodes is the Gauss–Legendre node count of the reference value
// reported by CompareAll. Exact for polynomials up to degree 127.
const ReferenceNodes = 64

var methodNames = [numMethods]string{"left", "right", "midpoint", "trapezoid"}

var (
	// ErrNoSubintervals indicates n < 1.
	ErrNoSubintervals = grid.ConfigError("quadrature: at least one subinterval required")

	// ErrUnknownMethod indicates a Method outside Left..Trapezoid or an unknown name.
	ErrUnknownMethod = grid.ConfigError("quadrature: unknown method")
)

// Methods returns every rule in declaration order.
func Methods() []Method { return []Method{Left, Right, Midpoint, Trapezoid} }

func (m Method) valid() bool { return m >= Left && m <= Trapezoid }

// String returns the lower-case rule name.
func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// MarshalText encodes the rule name.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, ErrUnknownMethod
	}
	return []byte(methodNames[m]), nil
}

// UnmarshalText decodes a rule name (case-insensitive).
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMethod maps "left", "right", "midpoint" or "trapezoid" to a Method.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Result is one quadrature approximation.
type Result struct {
	Value     float64 `json:"value"`
	Method    Method  `json:"method"`
	N         int     `json:"n"`
	DX        float64 `json:"dx"`
	Undefined int     `json:"undefined"` // evaluations that fell back to 0
}

// Comparison holds every rule over the same interval and subdivision.
// Results and Deviation are indexed like Methods().
type Comparison struct {
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	N         int       `json:"n"`
	Results   []Result  `json:"results"`
	Reference float64   `json:"reference"`
	Deviation []float64 `json:"deviation"` // |Results[i].Value - Reference|
}

// Get returns the result of rule m.
func (c Comparison) Get(m Method) (Result, bool) {
	for _, r := range c.Results {
		if r.Method == m {
			return r, true
		}
	}
	return Result{}, false
}

// Cell is one closed polygon of a rule's drawing: five vertices, the last
// repeating the first.
type Cell struct {
	X [5]float64 `json:"x"`
	Y [5]float64 `json:"y"`
}
