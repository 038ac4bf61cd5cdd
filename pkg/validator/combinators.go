package validator

import (
	"context"
	"errors"
	"reflect"
	"strconv"
)

// Compose pipes the value through each validator in turn, feeding the
// output of one into the next. The first failure is returned unchanged and
// later validators do not run. Compose with no validators returns the value
// as is.
func Compose(validators ...Validator) Validator {
	mustNotBeNil("compose", validators)
	if len(validators) == 1 {
		return validators[0]
	}
	return Func(func(ctx context.Context, value any) (any, error) {
		var err error
		for _, v := range validators {
			if value, err = v.Validate(ctx, value); err != nil {
				return nil, err
			}
		}
		return value, nil
	})
}

// Either tries each validator against the original value and returns the
// first success. When all fail, the failure of the last validator is
// returned. Errors other than *Invalid stop the search immediately.
func Either(validators ...Validator) Validator {
	if len(validators) == 0 {
		configPanic("either", errors.New("at least one alternative is required"))
	}
	mustNotBeNil("either", validators)
	return Func(func(ctx context.Context, value any) (any, error) {
		var last error
		for _, v := range validators {
			out, err := v.Validate(ctx, value)
			if err == nil {
				return out, nil
			}
			if !IsInvalid(err) {
				return nil, err
			}
			last = err
		}
		return nil, last
	})
}

// Check runs each validator against the original value and discards their
// results. It returns the original value, or the first failure.
func Check(validators ...Validator) Validator {
	mustNotBeNil("check", validators)
	return Func(func(ctx context.Context, value any) (any, error) {
		for _, v := range validators {
			if _, err := v.Validate(ctx, value); err != nil {
				return nil, err
			}
		}
		return value, nil
	})
}

// Excursion runs the validators as a Compose pipeline but returns the
// original value on success, so conversions made only to inspect the value
// do not leak into the output.
func Excursion(validators ...Validator) Validator {
	pipeline := Compose(validators...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if _, err := pipeline.Validate(ctx, value); err != nil {
			return nil, err
		}
		return value, nil
	})
}

// Each applies the validators, composed, to every element of a slice or
// array and returns the converted elements as []any. Every element is
// checked; failures are collected under the element index. Absent values
// pass through untouched.
func Each(validators []Validator, opts ...Option) Validator {
	pipeline := Compose(validators...)
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if IsAbsent(value) {
			return value, nil
		}

		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, s.Fail(ctx, "type", "Unexpected value type.", map[string]any{"type": rv.Type().String()})
		}

		out := make([]any, rv.Len())
		var failure *Invalid
		for i := range out {
			converted, err := pipeline.Validate(ctx, rv.Index(i).Interface())
			if err == nil {
				out[i] = converted
				continue
			}
			inv, ok := AsInvalid(err)
			if !ok {
				return nil, err
			}
			if failure == nil {
				failure = s.Fail(ctx, "each", "Some elements are invalid.", nil)
			}
			failure.Add(strconv.Itoa(i), inv)
		}
		if failure != nil {
			return nil, failure
		}
		return out, nil
	})
}

func mustNotBeNil(name string, validators []Validator) {
	for i, v := range validators {
		if v == nil {
			configPanic(name, errors.Join(ErrNilValidator, errors.New("position "+strconv.Itoa(i))))
		}
	}
}
