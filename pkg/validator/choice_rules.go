package validator

import (
	"context"
	"errors"
)

// Belongs accepts values found in domain.
func Belongs[T comparable](domain []T, opts ...Option) Validator {
	set := toSet(domain)
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if v, ok := value.(T); ok {
			if _, found := set[v]; found {
				return value, nil
			}
		}
		return nil, s.Fail(ctx, "belongs", "Invalid choice.", nil)
	})
}

// NotBelongs rejects values found in domain.
func NotBelongs[T comparable](domain []T, opts ...Option) Validator {
	set := toSet(domain)
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if v, ok := value.(T); ok {
			if _, found := set[v]; found {
				return nil, s.Fail(ctx, "not_belongs", "Invalid choice.", nil)
			}
		}
		return value, nil
	})
}

// Translate replaces a value with its entry in mapping, failing with key
// "belongs" for values that are not mapping keys. A nil mapping panics with
// *ConfigError.
func Translate[K comparable, V any](mapping map[K]V, opts ...Option) Validator {
	if mapping == nil {
		configPanic("translate", errors.New("nil mapping"))
	}
	table := make(map[K]V, len(mapping))
	for k, v := range mapping {
		table[k] = v
	}
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if k, ok := value.(K); ok {
			if v, found := table[k]; found {
				return v, nil
			}
		}
		return nil, s.Fail(ctx, "belongs", "Invalid choice.", nil)
	})
}

func toSet[T comparable](domain []T) map[T]struct{} {
	set := make(map[T]struct{}, len(domain))
	for _, v := range domain {
		set[v] = struct{}{}
	}
	return set
}
