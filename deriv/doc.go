// Package deriv estimates first derivatives of sampled functions by finite
// differences and builds the tangent and secant lines drawn over a plot.
//
// 🚀 Formulas:
//
//	Forward:  f'(x) ≈ (f(x+h) - f(x)) / h            (DefaultStep = 1e-4)
//	Central:  f'(x) ≈ (f(x+h) - f(x-h)) / 2h         (gonum diff/fd)
//	Tangent:  y(t) = f(x) + f'(x)·(t - x),  t ∈ {x-w, x+w}
//	Secant:   through (x, f(x)) and (x+h, f(x+h))
//
// ⚠️ Precision:
//
//	No discontinuity detection is performed. If f is undefined somewhere
//	in the stencil the zero fallback of expr.Safe flows into the quotient,
//	exactly like a plotted point would.
//
// ⚙️ Usage:
//
//	f := expr.MustParse("x^2")
//	d, _ := deriv.Forward(f, 3, deriv.DefaultStep) // ≈ 6.0001
//	tan, _ := deriv.Tangent(f, 3, deriv.DefaultStep, deriv.DefaultTangentHalfWidth)
//	secs, _ := deriv.Secants(f, 3, deriv.DefaultSecantSteps())
package deriv
