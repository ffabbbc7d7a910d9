package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcalc/grid"
)

// ErrZeroVector indicates an operation that needs a non-zero vector.
var ErrZeroVector = grid.ConfigError("vector: zero-length vector")

// ErrBadVector indicates text that is not three comma-separated numbers.
var ErrBadVector = grid.ConfigError("vector: expected three comma-separated numbers")

// Analysis gathers every pairwise quantity shown for two vectors.
type Analysis struct {
	A          r3.Vec    `json:"a"`
	B          r3.Vec    `json:"b"`
	Sum        r3.Vec    `json:"sum"`
	Cross      r3.Vec    `json:"cross"`
	Dot        float64   `json:"dot"`
	MagA       float64   `json:"magA"`
	MagB       float64   `json:"magB"`
	Projection r3.Vec    `json:"projection"` // of A onto B
	Angle      float64   `json:"angle"`      // radians
	Area       float64   `json:"area"`       // of the parallelogram spanned by A and B
	Corners    [5]r3.Vec `json:"corners"`
}

// Cross returns a × b.
func Cross(a, b r3.Vec) r3.Vec { return r3.Cross(a, b) }

// Dot returns a · b.
func Dot(a, b r3.Vec) float64 { return r3.Dot(a, b) }

// Magnitude returns |a|.
func Magnitude(a r3.Vec) float64 { return r3.Norm(a) }

// Scale returns k·a.
func Scale(k float64, a r3.Vec) r3.Vec { return r3.Scale(k, a) }

// Add returns a + b.
func Add(a, b r3.Vec) r3.Vec { return r3.Add(a, b) }

// Triple returns the scalar triple product a · (b × c), the signed volume
// of the parallelepiped spanned by the three vectors.
func Triple(a, b, c r3.Vec) float64 { return r3.Dot(a, r3.Cross(b, c)) }

// Projection returns the projection of a onto b: (a·b / b·b)·b.
func Projection(a, b r3.Vec) (r3.Vec, error) {
	bb := r3.Dot(b, b)
	if bb == 0 {
		return r3.Vec{}, fmt.Errorf("Projection: %w", ErrZeroVector)
	}
	return r3.Scale(r3.Dot(a, b)/bb, b), nil
}

// Angle returns the angle between a and b in [0, π].
func Angle(a, b r3.Vec) (float64, error) {
	na, nb := r3.Norm(a), r3.Norm(b)
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("Angle: %w", ErrZeroVector)
	}
	c := r3.Dot(a, b) / (na * nb)
	return math.Acos(math.Max(-1, math.Min(1, c))), nil
}

// Parallelogram returns the closed outline origin → a → a+b → b → origin.
func Parallelogram(a, b r3.Vec) [5]r3.Vec {
	return [5]r3.Vec{{}, a, r3.Add(a, b), b, {}}
}

// Analyze computes every quantity of Analysis.
//
// Errors: ErrZeroVector when either vector is zero.
func Analyze(a, b r3.Vec) (Analysis, error) {
	proj, err := Projection(a, b)
	if err != nil {
		return Analysis{}, fmt.Errorf("Analyze: %w", err)
	}
	angle, err := Angle(a, b)
	if err != nil {
		return Analysis{}, fmt.Errorf("Analyze: %w", err)
	}

	cross := r3.Cross(a, b)
	return Analysis{
		A:          a,
		B:          b,
		Sum:        r3.Add(a, b),
		Cross:      cross,
		Dot:        r3.Dot(a, b),
		MagA:       r3.Norm(a),
		MagB:       r3.Norm(b),
		Projection: proj,
		Angle:      angle,
		Area:       r3.Norm(cross),
		Corners:    Parallelogram(a, b),
	}, nil
}

// Parse reads "x,y,z" into a vector.
func Parse(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("%q: %w", s, ErrBadVector)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("%q: %w", s, ErrBadVector)
		}
		v[i] = f
	}
	if err := grid.ValidateFinite(v[:]...); err != nil {
		return r3.Vec{}, fmt.Errorf("%q: %w", s, err)
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
