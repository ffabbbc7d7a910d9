package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcalc/engine"
	"github.com/katalvlaran/lvcalc/grid"
	"github.com/katalvlaran/lvcalc/internal/config"
	"github.com/katalvlaran/lvcalc/quadrature"
	"github.com/katalvlaran/lvcalc/revolution"
	"github.com/katalvlaran/lvcalc/transform"
	"github.com/katalvlaran/lvcalc/vector"
)

// errUnknownOp indicates an -op value dispatch does not know.
var errUnknownOp = grid.ConfigError("lvcalc: unknown operation")

// scalar is the JSON shape of single-number results.
type scalar struct {
	Op    string  `json:"op"`
	Expr  string  `json:"expr"`
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// dispatch runs inv.op and returns the value to encode.
func dispatch(ctx context.Context, eng *engine.Engine, cfg *config.Config, inv invocation) (any, error) {
	integral := func() (engine.IntegralParams, error) {
		m, err := quadrature.ParseMethod(cfg.Integral.Method)
		return engine.IntegralParams{Expr: inv.expr, A: cfg.Integral.A, B: cfg.Integral.B, N: cfg.Integral.N, Method: m}, err
	}

	switch inv.op {
	case "sample":
		return eng.Sample(ctx, engine.SampleParams{Expr: inv.expr, Min: cfg.Grid.Min, Max: cfg.Grid.Max, Steps: cfg.Grid.Steps})

	case "derivative":
		d, err := eng.Derivative(inv.expr, inv.x)
		return scalar{Op: inv.op, Expr: inv.expr, X: inv.x, Value: d}, err

	case "tangent":
		return eng.Tangent(inv.expr, inv.x)

	case "secants":
		return eng.Secants(inv.expr, inv.x)

	case "integrate":
		p, err := integral()
		if err != nil {
			return nil, err
		}
		return eng.Integrate(p)

	case "compare":
		p, err := integral()
		if err != nil {
			return nil, err
		}
		return eng.CompareIntegrals(p)

	case "rectangles":
		p, err := integral()
		if err != nil {
			return nil, err
		}
		return eng.Rectangles(p)

	case "taylor":
		return eng.Taylor(engine.TaylorParams{
			Expr: inv.expr, Center: cfg.Taylor.Center, Order: cfg.Taylor.Order,
			Min: cfg.Grid.Min, Max: cfg.Grid.Max, Steps: cfg.Grid.Steps, Terms: inv.terms,
		})

	case "limit":
		return eng.ProbeLimit(engine.LimitParams{Expr: inv.expr, Point: cfg.Limit.Point, Epsilon: cfg.Limit.Epsilon})

	case "volume":
		axis, err := revolution.ParseAxis(cfg.Volume.Axis)
		if err != nil {
			return nil, err
		}
		return eng.Volume(engine.VolumeParams{
			Expr: inv.expr, Start: cfg.Volume.Start, End: cfg.Volume.End,
			Steps: cfg.Volume.Steps, Resolution: cfg.Volume.Resolution, Axis: axis,
			WithSection: inv.showSec, CrossSection: inv.section,
		})

	case "transform":
		return transformOp(eng, cfg, inv)

	case "series":
		return eng.Series(inv.expr, cfg.Series.Terms)

	case "vector":
		u, err := vector.Parse(inv.u)
		if err != nil {
			return nil, err
		}
		v, err := vector.Parse(inv.v)
		if err != nil {
			return nil, err
		}
		return eng.Vectors(u, v)
	}

	return nil, fmt.Errorf("%q: %w", inv.op, errUnknownOp)
}

func transformOp(eng *engine.Engine, cfg *config.Config, inv invocation) (transform.Result, error) {
	fam, err := transform.ParseFamily(inv.family)
	if err != nil {
		return transform.Result{}, err
	}
	ps, err := floatList(inv.params)
	if err != nil {
		return transform.Result{}, err
	}
	if len(ps) != 4 {
		return transform.Result{}, fmt.Errorf("-params %q: %w", inv.params, grid.ConfigError("lvcalc: want a,b,c,d"))
	}
	cs, err := floatList(inv.coeffs)
	if err != nil {
		return transform.Result{}, err
	}

	return eng.Transform(engine.TransformParams{
		Family:       fam,
		Params:       transform.Params{A: ps[0], B: ps[1], C: ps[2], D: ps[3]},
		Coefficients: cs,
		Min:          cfg.Grid.Min,
		Max:          cfg.Grid.Max,
		Steps:        cfg.Grid.Steps,
	})
}

// floatList parses "1, 2.5, -3"; an empty string is an empty list.
func floatList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
