package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/messages"
)

// FieldKey names the input field, or the tuple of fields, a schema
// validator consumes.
type FieldKey struct {
	names []string
}

// Key returns a key for one field, or a tuple key for several.
func Key(names ...string) FieldKey {
	return FieldKey{names: slices.Clone(names)}
}

// Names returns the field names of the key.
func (k FieldKey) Names() []string {
	return slices.Clone(k.names)
}

// Plural reports whether the key is a tuple of fields.
func (k FieldKey) Plural() bool {
	return len(k.names) > 1
}

// String joins the field names with commas. Failures of tuple validators
// without a field override are recorded under this name.
func (k FieldKey) String() string {
	return strings.Join(k.names, ",")
}

// Less orders singular keys before tuple keys, then by field names.
func (k FieldKey) Less(other FieldKey) bool {
	if k.Plural() != other.Plural() {
		return !k.Plural()
	}
	return slices.Compare(k.names, other.names) < 0
}

type fieldRule struct {
	key       FieldKey
	validator Validator
}

// Schema validates a mapping of named values. It is immutable once built
// and safe for concurrent use.
type Schema struct {
	rules        []fieldRule
	known        map[string]struct{}
	message      Message
	table        messages.Table
	allowMissing bool
	allowExtra   bool
	logger       *slog.Logger
}

// SchemaOption configures a Schema.
type SchemaOption func(*schemaBuilder)

type schemaBuilder struct {
	schema *Schema
	seen   map[string]struct{}
	errs   []error
}

// Field validates a single field with the validators composed in order.
// A field without validators is passed through unchanged.
func Field(name string, validators ...Validator) SchemaOption {
	return Rule(Key(name), validators...)
}

// Fields validates several fields jointly. The validators receive a []any
// holding one value per name, in order, and must return a []any of the same
// length.
func Fields(names []string, validators ...Validator) SchemaOption {
	return Rule(Key(names...), validators...)
}

// Rule validates the given key with the validators composed in order.
func Rule(key FieldKey, validators ...Validator) SchemaOption {
	return func(b *schemaBuilder) {
		if len(key.names) == 0 || slices.Contains(key.names, "") {
			b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrEmptyKey, key.String()))
			return
		}
		if hasDuplicates(key.names) {
			b.errs = append(b.errs, fmt.Errorf("%w: %q repeats a field", ErrDuplicateKey, key.String()))
			return
		}
		id := strings.Join(key.names, "\x00")
		if _, ok := b.seen[id]; ok {
			b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrDuplicateKey, key.String()))
			return
		}
		if slices.Contains(validators, nil) {
			b.errs = append(b.errs, fmt.Errorf("%w: field %q", ErrNilValidator, key.String()))
			return
		}
		b.seen[id] = struct{}{}
		b.schema.rules = append(b.schema.rules, fieldRule{key: key, validator: Compose(validators...)})
	}
}

// SchemaMessage overrides the schema-level messages
// ("schema.error", "schema.extra", "schema.missing", "schema.type").
func SchemaMessage(m Message) SchemaOption {
	return func(b *schemaBuilder) {
		b.schema.message = m
	}
}

// SchemaTable layers t over the ambient message table for every validator
// the schema runs.
func SchemaTable(t messages.Table) SchemaOption {
	return func(b *schemaBuilder) {
		b.schema.table = t
	}
}

// AllowMissing tolerates input without some of the schema fields. Their
// validators receive Missing.
func AllowMissing() SchemaOption {
	return func(b *schemaBuilder) {
		b.schema.allowMissing = true
	}
}

// AllowExtra tolerates input fields the schema does not know. They are
// left out of the output.
func AllowExtra() SchemaOption {
	return func(b *schemaBuilder) {
		b.schema.allowExtra = true
	}
}

// WithLogger sets the schema logger. A discard logger is used by default.
func WithLogger(logger *slog.Logger) SchemaOption {
	return func(b *schemaBuilder) {
		if logger != nil {
			b.schema.logger = logger
		}
	}
}

// NewSchema builds a schema from the given options.
func NewSchema(opts ...SchemaOption) (*Schema, error) {
	b := &schemaBuilder{
		schema: &Schema{
			known:  make(map[string]struct{}),
			logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		seen: make(map[string]struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	s := b.schema
	sort.SliceStable(s.rules, func(i, j int) bool {
		return s.rules[i].key.Less(s.rules[j].key)
	})
	for _, r := range s.rules {
		for _, name := range r.key.names {
			s.known[name] = struct{}{}
		}
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(opts ...SchemaOption) *Schema {
	s, err := NewSchema(opts...)
	if err != nil {
		panic(fmt.Sprintf("validator: invalid schema: %v", err))
	}
	return s
}

// Keys returns the schema keys in evaluation order.
func (s *Schema) Keys() []FieldKey {
	keys := make([]FieldKey, len(s.rules))
	for i, r := range s.rules {
		keys[i] = r.key
	}
	return keys
}

// Validate implements Validator, so schemas nest. The value must be a
// map[string]any or a map[string]string.
func (s *Schema) Validate(ctx context.Context, value any) (any, error) {
	switch data := value.(type) {
	case map[string]any:
		return s.Evaluate(ctx, data)
	case map[string]string:
		converted := make(map[string]any, len(data))
		for k, v := range data {
			converted[k] = v
		}
		return s.Evaluate(ctx, converted)
	default:
		ctx = s.context(ctx)
		return nil, s.fail(ctx, "schema.type", "Expected a mapping of fields, got %{type}.",
			map[string]any{"type": fmt.Sprintf("%T", value)})
	}
}

// Evaluate runs every field validator against data and returns the
// converted values. Failures do not stop evaluation: all of them are
// returned together as one *Invalid keyed by field name. Shape violations
// (unknown or missing fields) fail before any field is validated. Errors
// that are not *Invalid abort evaluation and are returned unchanged.
func (s *Schema) Evaluate(ctx context.Context, data map[string]any) (map[string]any, error) {
	ctx = s.context(ctx)

	if !s.allowExtra {
		if extra := s.extraFields(data); len(extra) > 0 {
			return nil, s.fail(ctx, "schema.extra", "Unexpected fields were submitted: %{fields}.",
				map[string]any{"fields": strings.Join(extra, ", ")})
		}
	}
	if !s.allowMissing {
		if missing := s.missingFields(data); len(missing) > 0 {
			return nil, s.fail(ctx, "schema.missing", "Required fields are missing: %{fields}.",
				map[string]any{"fields": strings.Join(missing, ", ")})
		}
	}

	result := make(map[string]any, len(s.known))
	var failure *Invalid
	for _, r := range s.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := r.validator.Validate(ctx, s.input(r.key, data, result))
		if err != nil {
			inv, ok := AsInvalid(err)
			if !ok {
				return nil, err
			}
			name := inv.Field
			if name == "" {
				name = r.key.String()
			}
			if failure == nil {
				failure = &Invalid{}
			}
			failure.Add(name, inv)
			s.logger.DebugContext(ctx, "Field validation failed", "field", name, "key", inv.Key, "message", inv.Message)
			continue
		}

		if err := s.store(r.key, out, result); err != nil {
			return nil, err
		}
	}

	if failure != nil {
		top := s.fail(ctx, "schema.error", "Problems were found in the submitted data.", nil)
		top.names, top.errors = failure.names, failure.errors
		s.logger.InfoContext(ctx, "Schema validation failed", "fields", top.Fields())
		return nil, top
	}
	return result, nil
}

func (s *Schema) context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.table != nil {
		ctx = messages.WithTable(ctx, messages.Chain{s.table, messages.FromContext(ctx)})
	}
	return ctx
}

func (s *Schema) fail(ctx context.Context, key, def string, params map[string]any) *Invalid {
	return &Invalid{
		Message: Resolve(ctx, s.message, key, def, params),
		Key:     key,
		Params:  params,
	}
}

// input gathers the value for key, preferring values already converted
// during this pass.
func (s *Schema) input(key FieldKey, data, result map[string]any) any {
	lookup := func(name string) any {
		if v, ok := result[name]; ok {
			return v
		}
		if v, ok := data[name]; ok {
			return v
		}
		return Missing
	}
	if !key.Plural() {
		return lookup(key.names[0])
	}
	values := make([]any, len(key.names))
	for i, name := range key.names {
		values[i] = lookup(name)
	}
	return values
}

func (s *Schema) store(key FieldKey, out any, result map[string]any) error {
	if !key.Plural() {
		put(result, key.names[0], out)
		return nil
	}
	values, ok := out.([]any)
	if !ok || len(values) != len(key.names) {
		return fmt.Errorf("%w: key %q returned %T", ErrPluralResult, key.String(), out)
	}
	for i, name := range key.names {
		put(result, name, values[i])
	}
	return nil
}

func put(result map[string]any, name string, value any) {
	if value == Missing {
		delete(result, name)
		return
	}
	result[name] = value
}

func (s *Schema) extraFields(data map[string]any) []string {
	var extra []string
	for name := range data {
		if _, ok := s.known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return extra
}

func (s *Schema) missingFields(data map[string]any) []string {
	var missing []string
	for name := range s.known {
		if _, ok := data[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

func hasDuplicates(names []string) bool {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return true
		}
		seen[n] = struct{}{}
	}
	return false
}
