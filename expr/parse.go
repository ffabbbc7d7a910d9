package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
)

// constants are the named values bound next to x on every evaluation.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Expression is a parsed formula in the single variable x.
// It is immutable after Parse and safe for concurrent use.
type Expression struct {
	src      string
	compiled *govaluate.EvaluableExpression
}

// Parse compiles src.
//
// Caret is rewritten to govaluate's ** before compiling (govaluate reads ^
// as bitwise xor) and chains of ^ are nested to the right, so 2^3^2 is 512.
// Exponent literals such as 1e-3 are expanded to decimals. Free names
// other than x, pi and e are rejected here rather than at the first Eval.
//
// Errors are *ParseError values matching ErrParse.
func Parse(src string) (*Expression, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, &ParseError{Expr: src, Err: ErrEmpty}
	}

	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(
		rewrite(trimmed), builtins)
	if err != nil {
		return nil, &ParseError{Expr: src, Err: err}
	}

	for _, name := range compiled.Vars() {
		if name == Variable {
			continue
		}
		if _, ok := constants[name]; ok {
			continue
		}
		return nil, &ParseError{Expr: src, Err: fmt.Errorf("%w %q", ErrUnknownIdentifier, name)}
	}

	return &Expression{src: src, compiled: compiled}, nil
}

// MustParse is Parse that panics on error. Intended for fixed formulas in
// tests and examples.
func MustParse(src string) *Expression {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

// Evaluate parses src and evaluates it once at x.
func Evaluate(src string, x float64) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(x)
}

// String returns the source text as typed.
func (e *Expression) String() string { return e.src }

// Canonical returns the source normalised for comparisons (see Canonical).
func (e *Expression) Canonical() string { return Canonical(e.src) }

// Eval evaluates the expression at x.
//
// Errors are *EvaluationError values matching ErrEvaluation. Results that are
// NaN or ±Inf (0/0, 1/0, overflow) are reported as ErrNonFinite.
func (e *Expression) Eval(x float64) (y float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			y, err = 0, &EvaluationError{Expr: e.src, X: x, Err: fmt.Errorf("%v", r)}
		}
	}()

	out, err := e.compiled.Eval(binding(x))
	if err != nil {
		return 0, &EvaluationError{Expr: e.src, X: x, Err: err}
	}

	v, ok := out.(float64)
	if !ok {
		return 0, &EvaluationError{Expr: e.src, X: x, Err: fmt.Errorf("%w: %T", ErrNotNumeric, out)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &EvaluationError{Expr: e.src, X: x, Err: ErrNonFinite}
	}

	return v, nil
}

// binding supplies x and the named constants to govaluate.
type binding float64

func (b binding) Get(name string) (interface{}, error) {
	if name == Variable {
		return float64(b), nil
	}
	if c, ok := constants[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownIdentifier, name)
}

// Canonical lower-cases src, drops all whitespace and rewrites ** to ^.
// Two sources with the same canonical form denote the same function.
func Canonical(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, r := range strings.ToLower(src) {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ReplaceAll(b.String(), "**", "^")
}
