package validator

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strip removes leading and trailing whitespace from strings. Other values
// pass through. It never fails.
func Strip() Validator {
	return Transform(strings.TrimSpace)
}

// Lower converts strings to lower case.
func Lower() Validator {
	return Transform(strings.ToLower)
}

// Upper converts strings to upper case.
func Upper() Validator {
	return Transform(strings.ToUpper)
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseSpace trims strings and replaces inner whitespace runs, line
// breaks included, with a single space.
func CollapseSpace() Validator {
	return Transform(func(s string) string {
		return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
	})
}

// StripControl removes control characters other than tab, CR and LF.
func StripControl() Validator {
	return Transform(func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
				return -1
			}
			return r
		}, s)
	})
}

// Transform applies fn to string values. Other values pass through.
// It never fails.
func Transform(fn func(string) string) Validator {
	if fn == nil {
		configPanic("transform", ErrNilValidator)
	}
	return Func(func(_ context.Context, value any) (any, error) {
		if s, ok := value.(string); ok {
			return fn(s), nil
		}
		return value, nil
	})
}

// ClampLength checks min <= len(value) <= max. Strings are measured in
// characters, slices, arrays and maps in elements. Absent values have
// length zero.
func ClampLength(min, max int, opts ...Option) Validator {
	return clampLength(&min, &max, opts)
}

// MinLength checks len(value) >= min.
func MinLength(min int, opts ...Option) Validator {
	return clampLength(&min, nil, opts)
}

// MaxLength checks len(value) <= max.
func MaxLength(max int, opts ...Option) Validator {
	return clampLength(nil, &max, opts)
}

func clampLength(min, max *int, opts []Option) Validator {
	if (min != nil && *min < 0) || (max != nil && *max < 0) {
		configPanic("clamp_length", errors.New("length bounds must not be negative"))
	}
	if min != nil && max != nil && *max < *min {
		configPanic("clamp_length", errBounds(*min, *max))
	}
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		n, ok := length(value)
		if !ok {
			return nil, s.Fail(ctx, "type", "Unexpected value type.", map[string]any{"type": typeName(value)})
		}
		if min != nil && n < *min {
			return nil, s.Fail(ctx, "minlen", "Too short, at least %{min} expected.", map[string]any{"min": *min})
		}
		if max != nil && n > *max {
			return nil, s.Fail(ctx, "maxlen", "Too long, at most %{max} allowed.", map[string]any{"max": *max})
		}
		return value, nil
	})
}

func length(value any) (int, bool) {
	if IsAbsent(value) {
		return 0, true
	}
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}
