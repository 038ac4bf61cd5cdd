package validator

import (
	"context"
	"reflect"
)

// Default substitutes d for absent values. It never fails.
func Default(d any) Validator {
	return Func(func(_ context.Context, value any) (any, error) {
		if IsAbsent(value) {
			return d, nil
		}
		return value, nil
	})
}

// Empty accepts only absent values and the empty string.
func Empty(opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if isEmpty(value) {
			return value, nil
		}
		return nil, s.Fail(ctx, "empty", "No value was expected.", nil)
	})
}

// NotEmpty rejects absent values and the empty string.
func NotEmpty(opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if !isEmpty(value) {
			return value, nil
		}
		return nil, s.Fail(ctx, "notempty", "A non-empty value was expected.", nil)
	})
}

// Equal accepts only values deeply equal to x.
func Equal(x any, opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if reflect.DeepEqual(value, x) {
			return value, nil
		}
		return nil, s.Fail(ctx, "eq", "Invalid value.", map[string]any{"value": x})
	})
}

// NotEqual rejects values deeply equal to x.
func NotEqual(x any, opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if !reflect.DeepEqual(value, x) {
			return value, nil
		}
		return nil, s.Fail(ctx, "not_eq", "Invalid value.", map[string]any{"value": x})
	})
}

func isEmpty(value any) bool {
	if IsAbsent(value) {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}
