// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation names for uniform error wrapping.
const (
	opSpan           = "Span"
	opSample         = "Sample"
	opSampleParallel = "SampleParallel"
)

// ValidateFinite returns ErrNonFinite when any of vs is NaN or ±Inf.
// Complexity: O(len(vs)).
func ValidateFinite(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}

// ValidateSpan checks the preconditions of a sample grid in a fixed order:
// finite bounds → steps ≥ 2 → min < max.
func ValidateSpan(xmin, xmax float64, steps int) error {
	if err := ValidateFinite(xmin, xmax); err != nil {
		return err
	}
	if steps < 2 {
		return ErrTooFewSteps
	}
	if xmin >= xmax {
		return ErrEmptyRange
	}
	return nil
}

// Span returns steps uniformly spaced points over [xmin, xmax]:
//
//	x_i = xmin + i*(xmax-xmin)/(steps-1),  i = 0..steps-1
//
// The first and last points equal xmin and xmax exactly.
//
// Errors: ErrNonFinite, ErrTooFewSteps, ErrEmptyRange (all ErrInvalidConfig).
// Complexity: O(steps).
func Span(xmin, xmax float64, steps int) ([]float64, error) {
	if err := ValidateSpan(xmin, xmax, steps); err != nil {
		return nil, gridErrorf(opSpan, err)
	}

	xs := floats.Span(make([]float64, steps), xmin, xmax)
	xs[0], xs[steps-1] = xmin, xmax // pin endpoints against rounding

	return xs, nil
}
