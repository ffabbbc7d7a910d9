// SPDX-License-Identifier: MIT

// Package quadrature approximates definite integrals with the four
// elementary rules taught alongside Riemann sums, and returns the geometry
// needed to draw them.
//
// 🚀 Rules (n subintervals, dx = (b-a)/n, x_i = a + i·dx):
//
//	Left:      Σ f(x_i)·dx
//	Right:     Σ f(x_{i+1})·dx
//	Midpoint:  Σ f(x_i + dx/2)·dx
//	Trapezoid: Σ (f(x_i) + f(x_{i+1}))/2·dx
//
// ✨ Key features:
//   - Integrate: one rule, O(n) evaluations, deterministic
//   - CompareAll: all four rules from one memoised pass over shared nodes,
//     plus a Gauss–Legendre reference (gonum integrate/quad) and the
//     deviation of every rule from it
//   - Rectangles: closed polygons (rectangles or trapezoids) per subinterval
//
// ⚠️ Edge cases:
//   - n == 0 (or negative) → ErrNoSubintervals, an ErrInvalidConfig error
//   - a == b              → 0 for every rule (empty sum)
//   - a > b               → signed result (dx < 0)
//   - f undefined at a node contributes 0; Result.Undefined counts such nodes
//
// ⚙️ Usage:
//
//	f := expr.MustParse("x^2")
//	r, err := quadrature.Integrate(f, 0, 1, 1000, quadrature.Midpoint)
//	cmp, err := quadrature.CompareAll(f, 0, 1, 1000)
//	for i, res := range cmp.Results {
//	  fmt.Println(res.Method, res.Value, cmp.Deviation[i])
//	}
package quadrature
