package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/lvcalc/internal/config"
)

// invocation holds the flags that are not configuration defaults.
type invocation struct {
	op      string
	expr    string
	x       float64
	preset  string
	family  string
	params  string
	coeffs  string
	u, v    string
	section float64
	showSec bool
	terms   bool
}

// bind registers every flag on a fresh FlagSet writing into cfg and inv.
func bind(cfg *config.Config, inv *invocation, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("lvcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&inv.op, "op", "sample",
		"operation: sample|derivative|tangent|secants|integrate|compare|rectangles|taylor|limit|volume|transform|series|vector")
	fs.StringVar(&inv.expr, "expr", "x^2", "expression in x")
	fs.StringVar(&inv.preset, "preset", cfg.Preset, "YAML preset file (env LVCALC_PRESET)")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "debug|info|warn|error")
	fs.BoolVar(&cfg.Logging.Development, "dev", cfg.Logging.Development, "console logs")

	fs.Float64Var(&cfg.Grid.Min, "min", cfg.Grid.Min, "grid minimum")
	fs.Float64Var(&cfg.Grid.Max, "max", cfg.Grid.Max, "grid maximum")
	fs.IntVar(&cfg.Grid.Steps, "steps", cfg.Grid.Steps, "grid points")
	fs.IntVar(&cfg.Grid.Workers, "workers", cfg.Grid.Workers, "parallel sampling goroutines")

	fs.Float64Var(&inv.x, "x", 0, "point for derivative and tangent")
	fs.Float64Var(&cfg.Derivative.Step, "h", cfg.Derivative.Step, "forward-difference step")

	fs.Float64Var(&cfg.Integral.A, "a", cfg.Integral.A, "lower integration bound")
	fs.Float64Var(&cfg.Integral.B, "b", cfg.Integral.B, "upper integration bound")
	fs.IntVar(&cfg.Integral.N, "n", cfg.Integral.N, "subintervals")
	fs.StringVar(&cfg.Integral.Method, "method", cfg.Integral.Method, "left|right|midpoint|trapezoid")

	fs.Float64Var(&cfg.Taylor.Center, "center", cfg.Taylor.Center, "Taylor centre")
	fs.IntVar(&cfg.Taylor.Order, "order", cfg.Taylor.Order, "Taylor order (number of terms)")
	fs.BoolVar(&inv.terms, "terms", false, "include Taylor term curves")

	fs.Float64Var(&cfg.Limit.Point, "point", cfg.Limit.Point, "limit point")
	fs.Float64Var(&cfg.Limit.Epsilon, "epsilon", cfg.Limit.Epsilon, "limit neighbourhood")
	fs.Float64Var(&cfg.Limit.Tolerance, "tolerance", cfg.Limit.Tolerance, "limit tolerance")
	fs.BoolVar(&cfg.Limit.Direct, "direct", cfg.Limit.Direct, "plain one-sample limit estimate")

	fs.Float64Var(&cfg.Volume.Start, "start", cfg.Volume.Start, "solid start")
	fs.Float64Var(&cfg.Volume.End, "end", cfg.Volume.End, "solid end")
	fs.IntVar(&cfg.Volume.Resolution, "resolution", cfg.Volume.Resolution, "mesh resolution")
	fs.StringVar(&cfg.Volume.Axis, "axis", cfg.Volume.Axis, "x|y")
	fs.Float64Var(&inv.section, "section", 0, "cross-section position")
	fs.BoolVar(&inv.showSec, "cross-section", false, "include the cross section")

	fs.StringVar(&inv.family, "family", "sin", "transform family: sin|cos|tan|exp|log|polynomial")
	fs.StringVar(&inv.params, "params", "1,0,1,0", "transform parameters a,b,c,d")
	fs.StringVar(&inv.coeffs, "coeffs", "", "polynomial coefficients c0,c1,...")

	fs.IntVar(&cfg.Series.Terms, "count", cfg.Series.Terms, "series terms")

	fs.StringVar(&inv.u, "u", "1,0,0", "first vector x,y,z")
	fs.StringVar(&inv.v, "v", "0,1,0", "second vector x,y,z")

	return fs
}

// configure resolves defaults in order environment → preset → flags.
// Flags are parsed twice when a preset is given so they still win over it.
func configure(args []string, stderr io.Writer) (*config.Config, invocation, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, invocation{}, err
	}

	var inv invocation
	if err := bind(cfg, &inv, stderr).Parse(args); err != nil {
		return nil, invocation{}, err
	}

	if inv.preset != "" {
		if cfg, err = config.Load(); err != nil {
			return nil, invocation{}, err
		}
		if err := cfg.ApplyPreset(inv.preset); err != nil {
			return nil, invocation{}, err
		}
		inv = invocation{}
		if err := bind(cfg, &inv, stderr).Parse(args); err != nil {
			return nil, invocation{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, invocation{}, fmt.Errorf("config: %w", err)
	}
	return cfg, inv, nil
}
