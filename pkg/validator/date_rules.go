package validator

import (
	"context"
	"errors"
	"time"
)

// ParseTime parses strings with the given time.Parse layout. time.Time
// values pass through. Failures use key "parse_time" and wrap the parse
// error. An empty layout panics with *ConfigError.
func ParseTime(layout string, opts ...Option) Validator {
	return parseTime("parse_time", layout, opts, func(t time.Time) time.Time { return t })
}

// ParseDate is ParseTime truncated to midnight of the parsed day.
func ParseDate(layout string, opts ...Option) Validator {
	return parseTime("parse_date", layout, opts, func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	})
}

// ParseDateTime is ParseTime truncated to whole seconds.
func ParseDateTime(layout string, opts ...Option) Validator {
	return parseTime("parse_datetime", layout, opts, func(t time.Time) time.Time {
		return t.Truncate(time.Second)
	})
}

func parseTime(name, layout string, opts []Option, convert func(time.Time) time.Time) Validator {
	if layout == "" {
		configPanic(name, errors.New("empty layout"))
	}
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		switch v := value.(type) {
		case time.Time:
			return convert(v), nil
		case string:
			t, err := time.Parse(layout, v)
			if err != nil {
				return nil, s.Fail(ctx, "parse_time", "Invalid time.", map[string]any{"layout": layout}).WithCause(err)
			}
			return convert(t), nil
		default:
			return nil, s.Fail(ctx, "parse_time", "Invalid time.", map[string]any{"layout": layout})
		}
	})
}
