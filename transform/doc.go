// SPDX-License-Identifier: MIT

// Package transform builds the parameterised family g(x) = C·base(A·(x - B)) + D
// used to show how scaling and shifting move a graph, together with the
// derivative of g.
//
// ✨ Families: sin, cos, tan, exp, log and polynomials up to degree 4.
// log is evaluated as ln(|t| + 1e-4) so the curve stays finite through 0.
//
// ⚙️ Usage:
//
//	p := transform.Params{A: 2, B: 0, C: 1, D: 0.5}
//	res, err := transform.Curves(transform.Sin, p, nil, transform.Grid())
//	// res.Function and res.Derivative share res.Function.X
package transform
