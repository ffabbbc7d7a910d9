// Package config loads defaults for the lvcalc command from LVCALC_*
// environment variables and, optionally, a YAML preset file.
//
// Precedence, lowest first: built-in defaults, environment, preset, flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcalc/grid"
	"github.com/katalvlaran/lvcalc/quadrature"
	"github.com/katalvlaran/lvcalc/revolution"
	"github.com/katalvlaran/lvcalc/taylor"
)

// Prefix is the environment variable prefix.
const Prefix = "LVCALC"

// Config holds every default of the command.
type Config struct {
	Preset     string           `yaml:"-"`
	Logging    LogConfig        `yaml:"logging"`
	Grid       GridConfig       `yaml:"grid"`
	Derivative DerivativeConfig `yaml:"derivative"`
	Integral   IntegralConfig   `yaml:"integral"`
	Taylor     TaylorConfig     `yaml:"taylor"`
	Limit      LimitConfig      `yaml:"limit"`
	Volume     VolumeConfig     `yaml:"volume"`
	Series     SeriesConfig     `yaml:"series"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `default:"warn" yaml:"level"`
	Development bool   `default:"false" yaml:"development"`
}

// GridConfig holds the sampling window.
type GridConfig struct {
	Min     float64 `default:"-10" yaml:"min"`
	Max     float64 `default:"10" yaml:"max"`
	Steps   int     `default:"1000" yaml:"steps"`
	Workers int     `default:"1" yaml:"workers"`
}

// DerivativeConfig holds the difference step and tangent drawing width.
type DerivativeConfig struct {
	Step      float64 `default:"0.0001" yaml:"step"`
	HalfWidth float64 `split_words:"true" default:"2" yaml:"half_width"`
}

// IntegralConfig holds the integration interval and rule.
type IntegralConfig struct {
	A      float64 `default:"0" yaml:"a"`
	B      float64 `default:"1" yaml:"b"`
	N      int     `default:"20" yaml:"n"`
	Method string  `default:"trapezoid" yaml:"method"`
}

// TaylorConfig holds the expansion centre and order.
type TaylorConfig struct {
	Center float64 `default:"0" yaml:"center"`
	Order  int     `default:"5" yaml:"order"`
}

// LimitConfig holds the probe neighbourhood and tolerance.
type LimitConfig struct {
	Point     float64 `default:"0" yaml:"point"`
	Epsilon   float64 `default:"0.1" yaml:"epsilon"`
	Tolerance float64 `default:"0.0001" yaml:"tolerance"`
	Direct    bool    `default:"false" yaml:"direct"`
}

// VolumeConfig holds the solid of revolution settings.
type VolumeConfig struct {
	Start      float64 `default:"0" yaml:"start"`
	End        float64 `default:"2" yaml:"end"`
	Steps      int     `default:"1000" yaml:"steps"`
	Resolution int     `default:"50" yaml:"resolution"`
	Axis       string  `default:"x" yaml:"axis"`
}

// SeriesConfig holds the number of sequence terms.
type SeriesConfig struct {
	Terms int `default:"10" yaml:"terms"`
}

// Default returns the built-in defaults; they match the envconfig default tags.
func Default() *Config {
	return &Config{
		Logging:    LogConfig{Level: "warn"},
		Grid:       GridConfig{Min: -10, Max: 10, Steps: 1000, Workers: 1},
		Derivative: DerivativeConfig{Step: 1e-4, HalfWidth: 2},
		Integral:   IntegralConfig{A: 0, B: 1, N: 20, Method: "trapezoid"},
		Taylor:     TaylorConfig{Center: 0, Order: 5},
		Limit:      LimitConfig{Point: 0, Epsilon: 0.1, Tolerance: 1e-4},
		Volume:     VolumeConfig{Start: 0, End: 2, Steps: 1000, Resolution: 50, Axis: "x"},
		Series:     SeriesConfig{Terms: 10},
	}
}

// Load reads LVCALC_* variables over the defaults. Keys are the upper-case
// section and field names: LVCALC_GRID_STEPS, LVCALC_LOGGING_LEVEL,
// LVCALC_DERIVATIVE_HALF_WIDTH, LVCALC_PRESET ...
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns Default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// LoadPreset reads a YAML preset over Default and validates the result.
func LoadPreset(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyPreset(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyPreset merges the YAML file at path into c and validates the result.
// Keys absent from the file keep their current value.
func (c *Config) ApplyPreset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse preset %s: %w", path, err)
	}
	return c.Validate()
}

// Validate checks that every value is usable. All failures match
// grid.ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{grid.ErrInvalidConfig}, args...)...))
		}
	}
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	check(finite(c.Grid.Min) && finite(c.Grid.Max) && c.Grid.Min < c.Grid.Max,
		"grid: min %g must be below max %g", c.Grid.Min, c.Grid.Max)
	check(c.Grid.Steps >= 2, "grid.steps must be >= 2, got %d", c.Grid.Steps)
	check(c.Grid.Workers >= 1, "grid.workers must be >= 1, got %d", c.Grid.Workers)
	check(finite(c.Derivative.Step) && c.Derivative.Step > 0, "derivative.step must be > 0")
	check(finite(c.Derivative.HalfWidth) && c.Derivative.HalfWidth > 0, "derivative.half_width must be > 0")
	check(c.Integral.N >= 1, "integral.n must be >= 1, got %d", c.Integral.N)
	if _, err := quadrature.ParseMethod(c.Integral.Method); err != nil {
		errs = append(errs, fmt.Errorf("integral.method: %w", err))
	}
	check(c.Taylor.Order >= 1 && c.Taylor.Order <= taylor.MaxOrder,
		"taylor.order must be in [1, %d], got %d", taylor.MaxOrder, c.Taylor.Order)
	check(finite(c.Limit.Epsilon) && c.Limit.Epsilon > 0, "limit.epsilon must be > 0")
	check(finite(c.Limit.Tolerance) && c.Limit.Tolerance > 0, "limit.tolerance must be > 0")
	check(c.Volume.Steps >= 1, "volume.steps must be >= 1, got %d", c.Volume.Steps)
	check(c.Volume.Resolution >= 1, "volume.resolution must be >= 1, got %d", c.Volume.Resolution)
	if _, err := revolution.ParseAxis(c.Volume.Axis); err != nil {
		errs = append(errs, fmt.Errorf("volume.axis: %w", err))
	}
	check(c.Series.Terms >= 1, "series.terms must be >= 1, got %d", c.Series.Terms)

	return errors.Join(errs...)
}
