// SPDX-License-Identifier: MIT

// Package grid builds uniform sample grids and evaluates functions over
// them, producing the Curve value every lvcalc visualisation renders.
//
// 🚀 What is a Curve?
//
//	Two equal-length slices X and Y with Y[i] = f(X[i]). A point where f
//	fails (log of a negative number, 0/0, ...) gets Y[i] = 0 and
//	Defined[i] = false, so one bad sample never stops a plot and the
//	renderer can still draw a gap instead of a fake zero.
//
// ✨ Key features:
//   - Span: N ≥ 2 uniformly spaced points over [min, max], endpoints exact
//   - Sample / SampleAt: sequential evaluation with the zero fallback
//   - SampleParallel: per-point parallel evaluation (errgroup), positions kept
//   - Curve helpers: Points for plotting, AbsDiff and MaxAbs for error curves
//
// ⚙️ Usage:
//
//	f := expr.MustParse("log(x)")
//	c, err := grid.Sample(f, -5, 5, 100)
//	if err != nil {
//	  // errors.Is(err, grid.ErrInvalidConfig): steps < 2, min >= max, NaN bounds
//	}
//	for i := range c.X {
//	  if !c.Defined[i] { /* draw a gap */ }
//	}
//
// ErrInvalidConfig is the shared category for degenerate parameters across
// lvcalc; other packages declare their own sentinels with ConfigError so a
// caller can tell "invalid configuration" apart from "evaluation failure".
package grid
