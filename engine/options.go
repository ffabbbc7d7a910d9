// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvcalc/deriv"
	"github.com/katalvlaran/lvcalc/limit"
)

// Defaults. They mirror the package-level defaults of the numeric packages.
const (
	// DefaultStep is the forward-difference step of Derivative, Tangent and Secants.
	DefaultStep = deriv.DefaultStep

	// DefaultHalfWidth is the drawn half width of a tangent line.
	DefaultHalfWidth = deriv.DefaultTangentHalfWidth

	// DefaultWorkers samples sequentially.
	DefaultWorkers = 1
)

const (
	panicLoggerNil      = "engine: WithLogger: logger must not be nil"
	panicStepInvalid    = "engine: WithStep: h must be finite and > 0"
	panicWidthInvalid   = "engine: WithHalfWidth: width must be finite and > 0"
	panicWorkersInvalid = "engine: WithWorkers: n must be >= 1"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of an Engine.
type Options struct {
	logger    *zap.Logger
	step      float64
	halfWidth float64
	workers   int
	probe     []limit.Option
}

func defaultOptions() Options {
	return Options{
		logger:    zap.NewNop(),
		step:      DefaultStep,
		halfWidth: DefaultHalfWidth,
		workers:   DefaultWorkers,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger sets the structured logger. Parse failures are logged at warn,
// fallback counts at debug.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.logger = l }
}

// WithStep sets the forward-difference step.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicStepInvalid)
	}
	return func(o *Options) { o.step = h }
}

// WithHalfWidth sets the drawn half width of tangent lines.
func WithHalfWidth(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		panic(panicWidthInvalid)
	}
	return func(o *Options) { o.halfWidth = w }
}

// WithWorkers enables parallel grid sampling with n goroutines when n > 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s, got %d", panicWorkersInvalid, n))
	}
	return func(o *Options) { o.workers = n }
}

// WithTolerance sets the limit agreement tolerance.
func WithTolerance(tol float64) Option {
	lo := limit.WithTolerance(tol)
	return func(o *Options) { o.probe = append(o.probe, lo) }
}

// WithProbe forwards options to every limit probe.
func WithProbe(opts ...limit.Option) Option {
	return func(o *Options) { o.probe = append(o.probe, opts...) }
}
