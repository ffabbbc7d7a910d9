package expr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// builtins are the functions registered with every parsed expression.
// Each one validates its arity and domain and reports failures as errors,
// never as NaN.
var builtins = map[string]govaluate.ExpressionFunction{
	"sin":   unary("sin", math.Sin, nil),
	"cos":   unary("cos", math.Cos, nil),
	"tan":   unary("tan", math.Tan, nil),
	"exp":   unary("exp", math.Exp, nil),
	"log":   unary("log", math.Log, positive),
	"ln":    unary("ln", math.Log, positive),
	"sqrt":  unary("sqrt", math.Sqrt, nonNegative),
	"abs":   unary("abs", math.Abs, nil),
	"asin":  unary("asin", math.Asin, unitInterval),
	"acos":  unary("acos", math.Acos, unitInterval),
	"atan":  unary("atan", math.Atan, nil),
	"sinh":  unary("sinh", math.Sinh, nil),
	"cosh":  unary("cosh", math.Cosh, nil),
	"tanh":  unary("tanh", math.Tanh, nil),
	"floor": unary("floor", math.Floor, nil),
	"ceil":  unary("ceil", math.Ceil, nil),
	"pow":   pow,
}

// domainCheck returns a non-nil error when v is outside the function domain.
type domainCheck func(v float64) error

func positive(v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %g <= 0", ErrDomain, v)
	}
	return nil
}

func nonNegative(v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %g < 0", ErrDomain, v)
	}
	return nil
}

func unitInterval(v float64) error {
	if v < -1 || v > 1 {
		return fmt.Errorf("%w: %g not in [-1, 1]", ErrDomain, v)
	}
	return nil
}

func unary(name string, fn func(float64) float64, check domainCheck) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s takes 1, got %d", ErrArity, name, len(args))
		}
		v, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		if check != nil {
			if err = check(v); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}
		return fn(v), nil
	}
}

func pow(args ...interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: pow takes 2, got %d", ErrArity, len(args))
	}
	base, err := toFloat("pow", args[0])
	if err != nil {
		return nil, err
	}
	exp, err := toFloat("pow", args[1])
	if err != nil {
		return nil, err
	}
	return math.Pow(base, exp), nil
}

func toFloat(name string, v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	default:
		return 0, fmt.Errorf("%w: %s argument of type %T", ErrNotNumeric, name, v)
	}
}
