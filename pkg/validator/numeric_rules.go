package validator

import (
	"cmp"
	"context"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Clamp checks min <= value <= max. The value is returned unchanged.
// Values of another numeric type are compared by their exact value.
func Clamp[T cmp.Ordered](min, max T, opts ...Option) Validator {
	return clamp(&min, &max, opts)
}

// AtLeast checks value >= min.
func AtLeast[T cmp.Ordered](min T, opts ...Option) Validator {
	return clamp(&min, nil, opts)
}

// AtMost checks value <= max.
func AtMost[T cmp.Ordered](max T, opts ...Option) Validator {
	return clamp(nil, &max, opts)
}

func clamp[T cmp.Ordered](min, max *T, opts []Option) Validator {
	if min != nil && max != nil && cmp.Less(*max, *min) {
		configPanic("clamp", errBounds(*min, *max))
	}
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		below, above, ok := outOfBounds(value, min, max)
		if !ok {
			return nil, s.Fail(ctx, "type", "Unexpected value type.", map[string]any{"type": typeName(value)})
		}
		if below {
			return nil, s.Fail(ctx, "min", "Value below minimum of %{min}.", map[string]any{"min": *min})
		}
		if above {
			return nil, s.Fail(ctx, "max", "Value above maximum of %{max}.", map[string]any{"max": *max})
		}
		return value, nil
	})
}

// outOfBounds compares value with the bounds. Values of T compare directly;
// other numeric kinds are compared exactly, without converting to T first,
// so fractions and out-of-range integers are never truncated into range.
func outOfBounds[T cmp.Ordered](value any, min, max *T) (below, above, ok bool) {
	if v, isT := value.(T); isT {
		return min != nil && cmp.Less(v, *min), max != nil && cmp.Less(*max, v), true
	}

	x, ok := exactNumber(value)
	if !ok {
		return false, false, false
	}
	if min != nil {
		m, ok := exactNumber(*min)
		if !ok {
			return false, false, false
		}
		below = x.Cmp(m) < 0
	}
	if max != nil {
		m, ok := exactNumber(*max)
		if !ok {
			return false, false, false
		}
		above = x.Cmp(m) > 0
	}
	return below, above, true
}

// Integer converts numbers and numeric strings to int. Absent values,
// fractional numbers and anything else fail with key "integer"; wrap with
// Either(Empty(), Integer()) or precede with Default to accept blanks.
func Integer(opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if n, ok := toInt(value); ok {
			return n, nil
		}
		return nil, s.Fail(ctx, "integer", "Not an integer.", nil)
	})
}

// Number converts numbers and numeric strings to float64.
// It fails with key "number" like Integer.
func Number(opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if f, ok := toFloat(value); ok {
			return f, nil
		}
		return nil, s.Fail(ctx, "number", "Not a number.", nil)
	})
}

func toInt(value any) (int, bool) {
	if IsAbsent(value) {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
			return 0, false
		}
		return int(f), true
	case reflect.String:
		n, err := strconv.Atoi(strings.TrimSpace(rv.String()))
		return n, err == nil
	default:
		return 0, false
	}
}

func toFloat(value any) (float64, bool) {
	if IsAbsent(value) {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}

// exactNumber returns a numeric value as a big.Float holding it without
// loss. NaN and non-numeric values are rejected.
func exactNumber(value any) (*big.Float, bool) {
	if IsAbsent(value) {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Float).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return nil, false
		}
		return new(big.Float).SetFloat64(f), true
	default:
		return nil, false
	}
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	if value == Missing {
		return "missing"
	}
	return reflect.TypeOf(value).String()
}
