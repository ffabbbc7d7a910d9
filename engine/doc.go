// SPDX-License-Identifier: MIT

// Package engine is the single entry point a visualisation front end talks
// to: it takes expression strings plus immutable parameter structs and
// returns the curves and scalars to draw.
//
// 🚀 What is it?
//
//	A thin facade over expr, grid, deriv, quadrature, taylor, limit,
//	revolution, transform, series and vector. Every call parses its
//	expression first, so an invalid expression is reported as
//	expr.ErrParse before any sampling happens.
//
// ✨ Error categories (match with errors.Is):
//   - expr.ErrParse         invalid expression; nothing was computed
//   - grid.ErrInvalidConfig degenerate parameters (n = 0, min ≥ max, ...)
//   - expr.ErrEvaluation    never returned by engine calls: undefined points
//     fall back to 0, are flagged in the results and counted in debug logs
//
// ⚙️ Usage:
//
//	eng := engine.New(engine.WithLogger(logger), engine.WithWorkers(4))
//	curve, err := eng.Sample(ctx, engine.SampleParams{Expr: "x^2", Min: -10, Max: 10, Steps: 1000})
//	cmp, err := eng.CompareIntegrals(engine.IntegralParams{Expr: "x^2", A: 0, B: 1, N: 1000})
//	probe, err := eng.ProbeLimit(engine.LimitParams{Expr: "abs(x)/x", Point: 0, Epsilon: 0.1})
//
// An Engine holds only its options and is safe for concurrent use.
package engine
