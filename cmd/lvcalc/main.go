// Command lvcalc runs one lvcalc computation and prints the result as JSON.
//
//	lvcalc -op integrate -expr 'x^2' -a 0 -b 1 -n 1000 -method midpoint
//	lvcalc -op limit -expr 'abs(x)/x' -point 0 -epsilon 0.1
//	LVCALC_GRID_STEPS=200 lvcalc -op sample -expr 'sin(x)'
//	lvcalc -preset classroom.yaml -op taylor -expr 'cos(x)' -order 6
//
// Defaults come from LVCALC_* environment variables, then the -preset YAML
// file, then flags. Logs go to stderr; the exit code is 1 on any error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcalc/engine"
	"github.com/katalvlaran/lvcalc/internal/logging"
	"github.com/katalvlaran/lvcalc/limit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, inv, err := configure(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "lvcalc:", err)
		return 1
	}

	logger, err := logging.NewTo(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	}, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "lvcalc: logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithWorkers(cfg.Grid.Workers),
		engine.WithStep(cfg.Derivative.Step),
		engine.WithHalfWidth(cfg.Derivative.HalfWidth),
		engine.WithTolerance(cfg.Limit.Tolerance),
	}
	if cfg.Limit.Direct {
		opts = append(opts, engine.WithProbe(limit.WithDirect()))
	}
	eng := engine.New(opts...)

	result, err := dispatch(ctx, eng, cfg, inv)
	if err != nil {
		logger.Error("operation failed", zap.String("op", inv.op), zap.Error(err))
		return 1
	}

	out, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", zap.String("op", inv.op), zap.Error(err))
		return 1
	}
	if _, err := fmt.Fprintln(stdout, string(out)); err != nil {
		logger.Error("write result", zap.Error(err))
		return 1
	}

	return 0
}
