package validator

import (
	"context"
	"regexp"
)

// Regex accepts strings fully matching pattern. The pattern is anchored at
// both ends. An invalid pattern panics with *ConfigError.
func Regex(pattern string, opts ...Option) Validator {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		configPanic("regex", err)
	}
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if str, ok := value.(string); ok && re.MatchString(str) {
			return value, nil
		}
		return nil, s.Fail(ctx, "regex", "Does not match pattern.", map[string]any{"pattern": pattern})
	})
}

// RegexSub replaces every match of pattern in string values with repl,
// which may reference groups as in regexp.Regexp.ReplaceAllString. Other
// values pass through. It never fails.
func RegexSub(pattern, repl string) Validator {
	re, err := regexp.Compile(pattern)
	if err != nil {
		configPanic("regex_sub", err)
	}
	return Transform(func(s string) string {
		return re.ReplaceAllString(s, repl)
	})
}
