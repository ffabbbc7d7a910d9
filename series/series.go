// Package series tabulates the terms f(1), f(2), ..., f(n) of a sequence
// together with its running partial sums and the mean term.
//
//	r, err := series.PartialSums(expr.MustParse("1/x^2"), 10)
//	// r.Sums[9] ≈ 1.5498, r.Average == r.Total/10
package series

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
)

// DefaultTerms is the number of terms shown when none is given.
const DefaultTerms = 10

// MaxTerms bounds the number of terms of one call.
const MaxTerms = 100000

// ErrTermCount indicates a term count outside [1, MaxTerms].
var ErrTermCount = grid.ConfigError(fmt.Sprintf("series: term count must be in [1, %d]", MaxTerms))

// Result is a tabulated sequence.
type Result struct {
	Terms   grid.Curve `json:"terms"` // X = 1..n, Y = f(n)
	Sums    []float64  `json:"sums"`  // Sums[i] = Σ_{k ≤ i} Terms.Y[k]
	Total   float64    `json:"total"`
	Average float64    `json:"average"`
}

// PartialSums evaluates f at 1..terms. Undefined terms count as 0 and are
// visible through Terms.Defined.
func PartialSums(f expr.Func, terms int) (Result, error) {
	if terms < 1 || terms > MaxTerms {
		return Result{}, fmt.Errorf("PartialSums: %w", ErrTermCount)
	}

	ns := make([]float64, terms)
	for i := range ns {
		ns[i] = float64(i + 1)
	}
	c := grid.SampleAt(f, ns)
	sums := floats.CumSum(make([]float64, terms), c.Y)

	return Result{
		Terms:   c,
		Sums:    sums,
		Total:   sums[terms-1],
		Average: stat.Mean(c.Y, nil),
	}, nil
}
