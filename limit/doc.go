// Package limit probes the one-sided behaviour of a function near a point.
//
// Probe samples twenty points on each side of the point, estimates the left
// and right limits just inside ±epsilon/100 and reports whether they agree
// (Exists) and whether they also agree with f(point) (Continuous).
//
//	p, err := limit.Probe(expr.MustParse("abs(x)/x"), 0, 0.1)
//	// p.Exists == false: jump discontinuity
//
// The estimate is numerical and carries no proof: a function that
// oscillates faster than epsilon/100 fools it. By default each one-sided
// estimate is refined by one Richardson step from δ = epsilon/100 and δ/2,
// which removes the linear term of the approach; WithDirect disables it.
package limit
