// SPDX-License-Identifier: MIT

package grid

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcalc/expr"
)

// Sample evaluates f over Span(xmin, xmax, steps).
//
// Points where f fails get Y = 0 and Defined = false; sampling always
// continues. The result depends only on the arguments.
//
// Errors: the Span preconditions only. Evaluation failures are never returned.
// Complexity: O(steps) evaluations.
func Sample(f expr.Func, xmin, xmax float64, steps int) (Curve, error) {
	xs, err := Span(xmin, xmax, steps)
	if err != nil {
		return Curve{}, gridErrorf(opSample, err)
	}
	return sampleInto(f, xs), nil
}

// SampleAt evaluates f at the given abscissae, in order. xs is copied.
func SampleAt(f expr.Func, xs []float64) Curve {
	own := make([]float64, len(xs))
	copy(own, xs)
	return sampleInto(f, own)
}

// sampleInto takes ownership of xs.
func sampleInto(f expr.Func, xs []float64) Curve {
	c := Curve{
		X:       xs,
		Y:       make([]float64, len(xs)),
		Defined: make([]bool, len(xs)),
	}
	for i, x := range xs {
		c.Y[i], c.Defined[i] = expr.Safe(f, x)
	}
	return c
}

// sampleContext is sampleInto with a cancellation check before every point.
func sampleContext(ctx context.Context, f expr.Func, xs []float64) (Curve, error) {
	c := Curve{
		X:       xs,
		Y:       make([]float64, len(xs)),
		Defined: make([]bool, len(xs)),
	}
	for i, x := range xs {
		if err := ctx.Err(); err != nil {
			return Curve{}, err
		}
		c.Y[i], c.Defined[i] = expr.Safe(f, x)
	}
	return c, nil
}

// SampleParallel is Sample with the grid split into contiguous chunks
// evaluated by at most workers goroutines. f must be safe for concurrent
// use (*expr.Expression is). Output positions match the grid exactly, so
// the result is identical to Sample.
//
// With workers == 1 the grid is sampled on the calling goroutine, still
// checking ctx between points.
//
// Errors: Span preconditions, ErrBadWorkers, or ctx.Err() if ctx is
// cancelled before all points are evaluated.
func SampleParallel(ctx context.Context, f expr.Func, xmin, xmax float64, steps, workers int) (Curve, error) {
	if workers < 1 {
		return Curve{}, gridErrorf(opSampleParallel, ErrBadWorkers)
	}
	xs, err := Span(xmin, xmax, steps)
	if err != nil {
		return Curve{}, gridErrorf(opSampleParallel, err)
	}
	if workers == 1 {
		c, err := sampleContext(ctx, f, xs)
		if err != nil {
			return Curve{}, gridErrorf(opSampleParallel, err)
		}
		return c, nil
	}

	c := Curve{
		X:       xs,
		Y:       make([]float64, steps),
		Defined: make([]bool, steps),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (steps + workers - 1) / workers
	for lo := 0; lo < steps; lo += chunk {
		hi := min(lo+chunk, steps)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				c.Y[i], c.Defined[i] = expr.Safe(f, c.X[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Curve{}, gridErrorf(opSampleParallel, err)
	}

	return c, nil
}
