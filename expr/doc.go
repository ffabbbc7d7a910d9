// Package expr turns user-typed formulas of one real variable into
// callable functions for the numeric packages of lvcalc.
//
// 🚀 What is it?
//
//	A thin adapter over github.com/Knetic/govaluate. The parser is treated
//	as an external capability: everything else in lvcalc consumes the
//	narrow Func interface, so the concrete library is swappable.
//
// ✨ Grammar:
//   - operators: + - * / ^ (caret is power) and parentheses
//   - functions: sin cos tan exp log sqrt, plus ln abs asin acos atan
//     sinh cosh tanh floor ceil pow
//   - constants: pi, e
//   - numbers: 2, 0.5 and exponent literals 1e-3, 2.5E4
//   - exactly one free variable: x
//
// ⚠️ ^ groups to the right as in ordinary notation: 2^3^2 is 2^(3^2) = 512.
// Prefix minus binds tighter than ^: "-x^2" is (-x)^2. Write "-(x^2)".
//
// ⚙️ Usage:
//
//	f, err := expr.Parse("x^2 + sin(x)")
//	if err != nil {
//	  // errors.Is(err, expr.ErrParse)
//	}
//	y, err := f.Eval(1.5)
//	if err != nil {
//	  // errors.Is(err, expr.ErrEvaluation): log of a non-positive number,
//	  // division by zero, ...
//	}
//
//	// renderers that must never stop on one bad point:
//	y, ok := expr.Safe(f, 0) // y == 0 when !ok
//
// Evaluation failures are per point. Callers that sample many points
// substitute 0 through Safe and keep going.
package expr
