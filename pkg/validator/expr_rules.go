package validator

import (
	"context"

	"github.com/expr-lang/expr"
)

// Expr accepts values for which the boolean expression holds. The value is
// available to the expression as `value`:
//
//	validator.Expr(`value % 2 == 0`)
//	validator.Expr(`len(value) > 0 && value[0] == "admin"`)
//
// Runtime errors, such as comparing mismatched types, fail with the error
// as cause. An expression that does not compile to a boolean panics with
// *ConfigError.
func Expr(expression string, opts ...Option) Validator {
	program, err := expr.Compile(expression, expr.Env(map[string]any{"value": nil}), expr.AsBool())
	if err != nil {
		configPanic("expr", err)
	}
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		params := map[string]any{"expr": expression}
		out, err := expr.Run(program, map[string]any{"value": value})
		if err != nil {
			return nil, s.Fail(ctx, "expr", "Invalid value.", params).WithCause(err)
		}
		if ok, _ := out.(bool); !ok {
			return nil, s.Fail(ctx, "expr", "Invalid value.", params)
		}
		return value, nil
	})
}
