// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvcalc/deriv"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/grid"
	"github.com/katalvlaran/lvcalc/limit"
	"github.com/katalvlaran/lvcalc/quadrature"
	"github.com/katalvlaran/lvcalc/revolution"
	"github.com/katalvlaran/lvcalc/series"
	"github.com/katalvlaran/lvcalc/taylor"
	"github.com/katalvlaran/lvcalc/transform"
	"github.com/katalvlaran/lvcalc/vector"
)

// Operation names for uniform error wrapping and log fields.
const (
	opValidate         = "Validate"
	opSample           = "Sample"
	opDerivative       = "Derivative"
	opTangent          = "Tangent"
	opSecants          = "Secants"
	opIntegrate        = "Integrate"
	opCompareIntegrals = "CompareIntegrals"
	opRectangles       = "Rectangles"
	opTaylor           = "Taylor"
	opProbeLimit       = "ProbeLimit"
	opVolume           = "Volume"
	opTransform        = "Transform"
	opSeries           = "Series"
	opVectors          = "Vectors"
)

// Engine evaluates user expressions for plotting.
type Engine struct {
	opts Options
	log  *zap.Logger
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	return &Engine{opts: o, log: o.logger}
}

// VolumeResult is a solid of revolution ready to draw.
type VolumeResult struct {
	Volume       float64          `json:"volume"`
	Axis         revolution.Axis  `json:"axis"`
	Surface      revolution.Mesh  `json:"surface"`
	CrossSection *revolution.Mesh `json:"crossSection,omitempty"`
}

func wrap(op string, err error) error { return fmt.Errorf("%s: %w", op, err) }

// parse compiles src and logs rejected input at warn level.
func (e *Engine) parse(op, src string) (*expr.Expression, error) {
	f, err := expr.Parse(src)
	if err != nil {
		e.log.Warn("expression rejected",
			zap.String("op", op),
			zap.String("expr", src),
			zap.Error(err))
		return nil, wrap(op, err)
	}
	return f, nil
}

// undefined logs how many samples of one call fell back to 0.
func (e *Engine) undefined(op, src string, n, total int) {
	if n == 0 {
		return
	}
	e.log.Debug("evaluation fallbacks",
		zap.String("op", op),
		zap.String("expr", src),
		zap.Int("undefined", n),
		zap.Int("samples", total))
}

// Validate reports whether src parses.
func (e *Engine) Validate(src string) error {
	_, err := e.parse(opValidate, src)
	return err
}

// Sample evaluates p.Expr on a uniform grid. With WithWorkers(n > 1) the
// points are evaluated in parallel; the result is identical either way.
// Both paths stop with ctx.Err() once ctx is cancelled.
func (e *Engine) Sample(ctx context.Context, p SampleParams) (grid.Curve, error) {
	f, err := e.parse(opSample, p.Expr)
	if err != nil {
		return grid.Curve{}, err
	}

	c, err := grid.SampleParallel(ctx, f, p.Min, p.Max, p.Steps, e.opts.workers)
	if err != nil {
		return grid.Curve{}, wrap(opSample, err)
	}
	e.undefined(opSample, p.Expr, c.Undefined(), c.Len())

	return c, nil
}

// Derivative returns the forward-difference derivative of src at x.
func (e *Engine) Derivative(src string, x float64) (float64, error) {
	f, err := e.parse(opDerivative, src)
	if err != nil {
		return 0, err
	}
	d, err := deriv.Forward(f, x, e.opts.step)
	if err != nil {
		return 0, wrap(opDerivative, err)
	}
	return d, nil
}

// Tangent returns the tangent line of src at x.
func (e *Engine) Tangent(src string, x float64) (deriv.Line, error) {
	f, err := e.parse(opTangent, src)
	if err != nil {
		return deriv.Line{}, err
	}
	l, err := deriv.Tangent(f, x, e.opts.step, e.opts.halfWidth)
	if err != nil {
		return deriv.Line{}, wrap(opTangent, err)
	}
	return l, nil
}

// Secants returns the secant lines of src at x for deriv.DefaultSecantSteps.
func (e *Engine) Secants(src string, x float64) ([]deriv.Line, error) {
	f, err := e.parse(opSecants, src)
	if err != nil {
		return nil, err
	}
	ls, err := deriv.Secants(f, x, deriv.DefaultSecantSteps())
	if err != nil {
		return nil, wrap(opSecants, err)
	}
	return ls, nil
}

// Integrate applies rule p.Method.
func (e *Engine) Integrate(p IntegralParams) (quadrature.Result, error) {
	f, err := e.parse(opIntegrate, p.Expr)
	if err != nil {
		return quadrature.Result{}, err
	}
	r, err := quadrature.Integrate(f, p.A, p.B, p.N, p.Method)
	if err != nil {
		return quadrature.Result{}, wrap(opIntegrate, err)
	}
	e.undefined(opIntegrate, p.Expr, r.Undefined, p.N)

	return r, nil
}

// CompareIntegrals applies every rule plus the Gauss–Legendre reference.
func (e *Engine) CompareIntegrals(p IntegralParams) (quadrature.Comparison, error) {
	f, err := e.parse(opCompareIntegrals, p.Expr)
	if err != nil {
		return quadrature.Comparison{}, err
	}
	cmp, err := quadrature.CompareAll(f, p.A, p.B, p.N)
	if err != nil {
		return quadrature.Comparison{}, wrap(opCompareIntegrals, err)
	}
	for _, r := range cmp.Results {
		e.undefined(opCompareIntegrals+"/"+r.Method.String(), p.Expr, r.Undefined, p.N)
	}

	return cmp, nil
}

// Rectangles returns the drawing of rule p.Method.
func (e *Engine) Rectangles(p IntegralParams) ([]quadrature.Cell, error) {
	f, err := e.parse(opRectangles, p.Expr)
	if err != nil {
		return nil, err
	}
	cells, err := quadrature.Rectangles(f, p.A, p.B, p.N, p.Method)
	if err != nil {
		return nil, wrap(opRectangles, err)
	}
	return cells, nil
}

// Taylor builds the Taylor polynomial with its original and error curves.
// The family is detected from the expression text.
func (e *Engine) Taylor(p TaylorParams) (taylor.Approximation, error) {
	f, err := e.parse(opTaylor, p.Expr)
	if err != nil {
		return taylor.Approximation{}, err
	}
	xs, err := grid.Span(p.Min, p.Max, p.Steps)
	if err != nil {
		return taylor.Approximation{}, wrap(opTaylor, err)
	}

	opts := []taylor.Option{taylor.WithError()}
	if p.Terms {
		opts = append(opts, taylor.WithTerms())
	}
	a, err := taylor.Build(f, taylor.DetectFamily(p.Expr), p.Center, p.Order, xs, opts...)
	if err != nil {
		return taylor.Approximation{}, wrap(opTaylor, err)
	}
	e.undefined(opTaylor, p.Expr, a.Original.Undefined(), len(xs))

	return a, nil
}

// ProbeLimit probes the one-sided limits of p.Expr at p.Point.
func (e *Engine) ProbeLimit(p LimitParams) (limit.Result, error) {
	f, err := e.parse(opProbeLimit, p.Expr)
	if err != nil {
		return limit.Result{}, err
	}
	r, err := limit.Probe(f, p.Point, p.Epsilon, e.opts.probe...)
	if err != nil {
		return limit.Result{}, wrap(opProbeLimit, err)
	}
	e.undefined(opProbeLimit, p.Expr, r.Left.Undefined()+r.Right.Undefined(), r.Left.Len()+r.Right.Len())

	return r, nil
}

// Volume computes the solid of revolution, its surface mesh and optionally
// one cross section.
func (e *Engine) Volume(p VolumeParams) (VolumeResult, error) {
	f, err := e.parse(opVolume, p.Expr)
	if err != nil {
		return VolumeResult{}, err
	}

	v, err := revolution.Volume(f, p.Start, p.End, p.Steps, p.Axis)
	if err != nil {
		return VolumeResult{}, wrap(opVolume, err)
	}
	surf, err := revolution.Surface(f, p.Start, p.End, p.Resolution, p.Axis)
	if err != nil {
		return VolumeResult{}, wrap(opVolume, err)
	}
	res := VolumeResult{Volume: v, Axis: p.Axis, Surface: surf}

	if p.WithSection {
		cs, err := revolution.CrossSection(f, p.CrossSection, p.Resolution, p.Axis)
		if err != nil {
			return VolumeResult{}, wrap(opVolume, err)
		}
		res.CrossSection = &cs
	}

	return res, nil
}

// Transform samples a transformed base function and its derivative.
// It takes no expression and therefore cannot fail with expr.ErrParse.
func (e *Engine) Transform(p TransformParams) (transform.Result, error) {
	xs := transform.Grid()
	if p.Steps != 0 {
		var err error
		if xs, err = grid.Span(p.Min, p.Max, p.Steps); err != nil {
			return transform.Result{}, wrap(opTransform, err)
		}
	}
	r, err := transform.Curves(p.Family, p.Params, p.Coefficients, xs)
	if err != nil {
		return transform.Result{}, wrap(opTransform, err)
	}
	e.undefined(opTransform, r.Label, r.Function.Undefined(), r.Function.Len())

	return r, nil
}

// Series tabulates src at 1..terms with partial sums.
func (e *Engine) Series(src string, terms int) (series.Result, error) {
	f, err := e.parse(opSeries, src)
	if err != nil {
		return series.Result{}, err
	}
	r, err := series.PartialSums(f, terms)
	if err != nil {
		return series.Result{}, wrap(opSeries, err)
	}
	e.undefined(opSeries, src, r.Terms.Undefined(), terms)

	return r, nil
}

// Vectors analyses two 3-D vectors.
func (e *Engine) Vectors(a, b r3.Vec) (vector.Analysis, error) {
	res, err := vector.Analyze(a, b)
	if err != nil {
		return vector.Analysis{}, wrap(opVectors, err)
	}
	return res, nil
}
