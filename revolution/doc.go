// Package revolution computes solids of revolution of y = f(x): their
// volume and the point meshes used to draw the surface and one cross
// section.
//
// Two axes are supported:
//
//	AxisX  disk method,  V = Σ π·f(x)²·dx
//	AxisY  shell method, V = Σ 2π·x·f(x)·dx
//
// Both sums are left Riemann sums over [start, end] and the absolute value
// is reported. Mesh points are gonum r3 vectors; undefined samples of f
// contribute radius 0.
//
//	v, err := revolution.Volume(expr.MustParse("x^2"), 0, 1, revolution.DefaultSteps, revolution.AxisX)
//	// v ≈ π/5
package revolution
