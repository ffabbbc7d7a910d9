// Package vector provides the 3-D vector operations of the vector-calculus
// lessons on top of gonum's spatial/r3.
//
//	a, b := r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 4, Y: 5, Z: 6}
//	res, err := vector.Analyze(a, b)
//	// res.Cross, res.Dot, res.Projection, res.Area ...
//
// Projection and Angle need a non-zero reference vector and fail with
// ErrZeroVector otherwise.
package vector
