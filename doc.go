// Package lvcalc is a numeric function engine for calculus visualisations:
// it turns a user-typed expression of x into the curves and numbers a
// lesson needs to draw.
//
// 🚀 What is lvcalc?
//
//	A small set of deterministic, allocation-light packages:
//		• expr       — parse and evaluate expressions (govaluate adapter)
//		• grid       — uniform grids and sampled curves, sequential or parallel
//		• deriv      — forward/central differences, tangent and secant lines
//		• quadrature — left, right, midpoint and trapezoid rules + Gauss–Legendre reference
//		• taylor     — Taylor polynomials with error and per-term curves
//		• limit      — one-sided limit probes, existence and continuity
//		• revolution — volumes and meshes of solids of revolution
//		• transform  — C·f(A·(x-B)) + D families and their derivatives
//		• series     — sequence terms, partial sums and mean
//		• vector     — 3-D vector algebra on gonum r3
//		• engine     — one facade: parse once, compute, log
//
// ✨ Why lvcalc?
//
//   - Never crashes a render: a point where f is undefined becomes 0 and is
//     flagged, instead of aborting the whole curve
//   - Three disjoint error categories: expr.ErrParse, expr.ErrEvaluation and
//     grid.ErrInvalidConfig, all matched with errors.Is
//   - Pure functions: identical inputs give bit-identical outputs
//
// Quick example:
//
//	eng := engine.New()
//	cmp, _ := eng.CompareIntegrals(engine.IntegralParams{Expr: "x^2", A: 0, B: 1, N: 1000})
//	fmt.Println(cmp.Reference) // 0.333...
//
// The lvcalc command (cmd/lvcalc) exposes every operation on the command
// line and prints JSON.
//
//	go install github.com/katalvlaran/lvcalc/cmd/lvcalc@latest
package lvcalc
