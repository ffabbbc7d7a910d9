package expr

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors. Every message is prefixed with "expr:" and callers match
// them with errors.Is.
var (
	// ErrParse is the category of every failure raised by Parse.
	ErrParse = errors.New("expr: invalid expression")

	// ErrEvaluation is the category of every per-point failure raised by Eval.
	ErrEvaluation = errors.New("expr: evaluation failed")

	// ErrEmpty indicates a blank expression string.
	ErrEmpty = errors.New("expr: empty expression")

	// ErrUnknownIdentifier indicates a free name other than x, pi or e.
	ErrUnknownIdentifier = errors.New("expr: unknown identifier")

	// ErrDomain indicates a function argument outside its real domain
	// (log of a non-positive number, sqrt of a negative number).
	ErrDomain = errors.New("expr: argument outside function domain")

	// ErrNonFinite indicates a NaN or ±Inf result (e.g. division by zero).
	ErrNonFinite = errors.New("expr: result is not a finite number")

	// ErrArity indicates a function called with the wrong number of arguments.
	ErrArity = errors.New("expr: wrong number of arguments")

	// ErrNotNumeric indicates an expression that evaluated to a bool or string.
	ErrNotNumeric = errors.New("expr: result is not numeric")
)

// ParseError reports an expression that cannot be compiled.
type ParseError struct {
	Expr string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: parse %q: %v", e.Expr, e.Err)
}

// Unwrap exposes both the ErrParse category and the underlying cause.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// EvaluationError reports a failure of one expression at one point.
type EvaluationError struct {
	Expr string
	X    float64
	Err  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("expr: eval %q at x=%s: %v",
		e.Expr, strconv.FormatFloat(e.X, 'g', -1, 64), e.Err)
}

// Unwrap exposes both the ErrEvaluation category and the underlying cause.
func (e *EvaluationError) Unwrap() []error { return []error{ErrEvaluation, e.Err} }
