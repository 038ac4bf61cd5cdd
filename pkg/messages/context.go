package messages

import "context"

type tableContextKey struct{}

type languageContextKey struct{}

// WithTable returns a context carrying t as the ambient message table.
// A nil table detaches any table set by a parent context.
func WithTable(ctx context.Context, t Table) context.Context {
	if t == nil {
		t = Empty
	}
	return context.WithValue(ctx, tableContextKey{}, t)
}

// FromContext returns the ambient table: the context table if one is set,
// the process default otherwise.
func FromContext(ctx context.Context) Table {
	if ctx != nil {
		if t, ok := ctx.Value(tableContextKey{}).(Table); ok {
			return t
		}
	}
	return Default()
}

// Lookup resolves key through the ambient table.
func Lookup(ctx context.Context, key string) (string, bool) {
	return FromContext(ctx).Lookup(key)
}

// Scope runs fn with t as the ambient table. The parent context is never
// modified, so the previous table is in effect again once fn returns,
// whatever way it returns.
func Scope(ctx context.Context, t Table, fn func(ctx context.Context) error) error {
	return fn(WithTable(ctx, t))
}

// WithLanguage stores the preferred language used by Catalog.Bind.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// Language returns the language stored with WithLanguage, or "".
func Language(ctx context.Context) string {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	return lang
}
