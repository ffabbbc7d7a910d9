// SPDX-License-Identifier: MIT

// Package taylor builds truncated Taylor polynomials of a function around a
// centre x0 and samples them next to the function itself.
//
// 🚀 What is it?
//
//	P_n(x) = Σ_{k=0}^{n} f^(k)(x0)/k! · (x - x0)^k
//
//	The coefficients c_k = f^(k)(x0)/k! come from closed forms when the
//	function is one of the recognised families, and from iterated forward
//	differences otherwise.
//
// ✨ Families:
//   - Sin, Cos: exact four-cycle of derivatives (sin → cos → -sin → -cos)
//   - Exp:      every derivative is exp(x0)
//   - Ln:       f^(k)(x0) = (-1)^(k-1)·(k-1)!/x0^k, undefined for x0 ≤ 0
//   - Generic:  Δ^k f(x0)/h_k^k with h_k = max(h, ε^(1/(k+1)))
//
// A family is chosen with DetectFamily on the canonical source
// ("sin(x)", "exp(x)", "ln(x)" ...). Anything else is Generic.
//
// ⚙️ Usage:
//
//	f := expr.MustParse("sin(x)")
//	xs, _ := grid.Span(-5, 5, 1000)
//	a, err := taylor.Build(f, taylor.DetectFamily(f.String()), 0, 8, xs,
//	  taylor.WithOriginal(), taylor.WithError())
//	fmt.Println(a.MaxError)
//
// The order counts terms: order n sums k = 0..n-1, a polynomial of degree n-1.
//
// ⚠️ Orders outside [1, MaxOrder] fail with ErrOrderRange. A coefficient
// that cannot be computed (f undefined at x0) falls back to 0, like every
// other sample in lvcalc.
package taylor
