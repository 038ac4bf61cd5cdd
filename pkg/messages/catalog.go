package messages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language option is given.
const DefaultLanguage = "en"

// Catalog holds message tables for several languages and picks the best
// match for a requested language. A Catalog is immutable once built and safe
// for concurrent use.
type Catalog struct {
	tables      []Nested
	langs       []string
	matcher     language.Matcher
	defaultLang string
	logMissing  bool
	logger      *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when nothing better matches.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the catalog logger. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingLogging logs lookups of keys absent from the matched language.
// Default is false to avoid excessive logging.
func WithMissingLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}

// NewCatalog loads tables through adapter.
func NewCatalog(ctx context.Context, adapter Adapter, options ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(c)
	}

	if _, err := language.Parse(c.defaultLang); err != nil {
		return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("default language %q: %w", c.defaultLang, err))
	}

	data, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	langs := make([]string, 0, len(data))
	for lang, table := range data {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if table == nil {
			return nil, fmt.Errorf("nil message table for language %q", lang)
		}
		if _, err := language.Parse(lang); err != nil {
			return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("%q: %w", lang, err))
		}
		langs = append(langs, lang)
	}
	// The default language goes first so the matcher falls back to it.
	sort.Slice(langs, func(i, j int) bool {
		if (langs[i] == c.defaultLang) != (langs[j] == c.defaultLang) {
			return langs[i] == c.defaultLang
		}
		return langs[i] < langs[j]
	})

	tags := make([]language.Tag, len(langs))
	c.tables = make([]Nested, len(langs))
	for i, lang := range langs {
		tags[i] = language.Make(lang)
		c.tables[i] = data[lang]
	}
	c.langs = langs
	c.matcher = language.NewMatcher(tags)

	if len(langs) == 0 {
		c.logger.WarnContext(ctx, "No message tables loaded")
	} else {
		c.logger.InfoContext(ctx, "Message tables loaded", "languages", c.Languages())
	}
	return c, nil
}

// Languages returns the loaded language codes, sorted.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.langs))
	copy(out, c.langs)
	sort.Strings(out)
	return out
}

// Table returns the table for the best match of lang. Keys missing from
// the matched language fall back to the default language.
func (c *Catalog) Table(lang string) Table {
	if len(c.langs) == 0 {
		return Empty
	}

	idx := c.match(lang)
	t := &catalogTable{catalog: c, lang: c.langs[idx], table: c.tables[idx]}
	if idx != 0 && c.langs[0] == c.defaultLang {
		t.fallback = c.tables[0]
	}
	return t
}

// Bind attaches the table matching the context language (see WithLanguage)
// as the ambient table.
func (c *Catalog) Bind(ctx context.Context) context.Context {
	lang := Language(ctx)
	if lang == "" {
		lang = c.defaultLang
	}
	return WithTable(ctx, c.Table(lang))
}

func (c *Catalog) match(lang string) int {
	tag, err := language.Parse(lang)
	if err != nil {
		return 0
	}
	_, idx, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return 0
	}
	return idx
}

type catalogTable struct {
	catalog  *Catalog
	lang     string
	table    Nested
	fallback Nested
}

func (t *catalogTable) Lookup(key string) (string, bool) {
	if v, ok := t.table.Lookup(key); ok {
		return v, true
	}
	if t.catalog.logMissing {
		t.catalog.logger.Warn("Message not found", "lang", t.lang, "key", key)
	}
	if t.fallback != nil {
		return t.fallback.Lookup(key)
	}
	return "", false
}
