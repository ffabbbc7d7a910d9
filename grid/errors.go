// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the category of every degenerate-parameter error in
// lvcalc. It is never returned bare; match it with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// configError is a sentinel that also matches ErrInvalidConfig.
// It is a comparable value, so errors.Is works on the sentinel itself too.
type configError string

func (e configError) Error() string { return string(e) }

// Is reports ErrInvalidConfig as a match.
func (e configError) Is(target error) bool { return target == ErrInvalidConfig }

// ConfigError returns a sentinel in the ErrInvalidConfig category.
// Packages call it once, at var declaration.
func ConfigError(msg string) error { return configError(msg) }

var (
	// ErrTooFewSteps indicates fewer than two grid points were requested.
	ErrTooFewSteps = ConfigError("grid: at least two samples required")

	// ErrEmptyRange indicates min >= max.
	ErrEmptyRange = ConfigError("grid: min must be strictly less than max")

	// ErrNonFinite indicates a NaN or ±Inf parameter.
	ErrNonFinite = ConfigError("grid: parameters must be finite")

	// ErrBadWorkers indicates a non-positive worker count for parallel sampling.
	ErrBadWorkers = ConfigError("grid: workers must be >= 1")

	// ErrGridMismatch indicates two curves that do not share the same abscissae.
	ErrGridMismatch = ConfigError("grid: curves are not sampled on the same grid")
)

// gridErrorf tags err with the failing operation, keeping errors.Is intact.
func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
