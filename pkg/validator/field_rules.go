package validator

import (
	"context"
	"errors"
	"reflect"
)

// FieldsEqual is a tuple validator accepting a []any whose values are all
// equal. Use WithField to attach the failure to one of the fields instead of
// the tuple key.
func FieldsEqual(opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		values, ok := value.([]any)
		if !ok {
			return nil, s.Fail(ctx, "type", "Unexpected value type.", map[string]any{"type": typeName(value)})
		}
		for _, v := range values[min(1, len(values)):] {
			if !reflect.DeepEqual(v, values[0]) {
				return nil, s.Fail(ctx, "fields_equal", "Fields do not match.", nil)
			}
		}
		return values, nil
	})
}

// FieldsMatch checks that two entries of a map[string]any are equal. It is
// meant to run on a whole converted mapping, for example after a schema:
//
//	validator.Compose(schema, validator.FieldsMatch("password", "password_confirm",
//		validator.WithField("password_confirm"),
//	))
//
// Absent entries compare as Missing.
func FieldsMatch(name1, name2 string, opts ...Option) Validator {
	if name1 == "" || name2 == "" {
		configPanic("fields_match", errors.New("field names must not be empty"))
	}
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		data, ok := value.(map[string]any)
		if !ok {
			return nil, s.Fail(ctx, "type", "Unexpected value type.", map[string]any{"type": typeName(value)})
		}
		if !reflect.DeepEqual(entry(data, name1), entry(data, name2)) {
			return nil, s.Fail(ctx, "fields_match", "Fields do not match.",
				map[string]any{"field1": name1, "field2": name2})
		}
		return data, nil
	})
}

func entry(data map[string]any, name string) any {
	if v, ok := data[name]; ok {
		return v
	}
	return Missing
}
