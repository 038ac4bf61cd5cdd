package validator

import (
	"context"
	"errors"
	"reflect"
	"strings"
)

// ConfirmType accepts values whose dynamic type is one of types, or
// implements one of the interface types among them.
// An empty or nil type set panics with *ConfigError.
func ConfirmType(types ...reflect.Type) Validator {
	return confirmType(types, nil)
}

// OfType accepts values of dynamic type T.
func OfType[T any](opts ...Option) Validator {
	return confirmType([]reflect.Type{reflect.TypeFor[T]()}, opts)
}

// ConfirmTypeWith is ConfirmType with options.
func ConfirmTypeWith(types []reflect.Type, opts ...Option) Validator {
	return confirmType(types, opts)
}

func confirmType(types []reflect.Type, opts []Option) Validator {
	if len(types) == 0 {
		configPanic("confirm_type", errors.New("no types given"))
	}
	names := make([]string, len(types))
	for i, t := range types {
		if t == nil {
			configPanic("confirm_type", errors.New("nil type"))
		}
		names[i] = t.String()
	}
	allowed := strings.Join(names, ", ")

	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if value != nil && value != Missing {
			vt := reflect.TypeOf(value)
			for _, t := range types {
				if vt == t || (t.Kind() == reflect.Interface && vt.Implements(t)) {
					return value, nil
				}
			}
		}
		return nil, s.Fail(ctx, "confirm_type", "Unexpected value type, expected one of %{types}.",
			map[string]any{"types": allowed, "type": typeName(value)})
	})
}
