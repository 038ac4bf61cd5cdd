package validator

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/messages"
)

// Validator converts a value or reports why it cannot.
type Validator interface {
	Validate(ctx context.Context, value any) (any, error)
}

// Func adapts a plain function to the Validator interface.
type Func func(ctx context.Context, value any) (any, error)

// Validate implements Validator.
func (f Func) Validate(ctx context.Context, value any) (any, error) {
	return f(ctx, value)
}

type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing is passed to field validators when the input has no value for the
// field. It is distinct from nil and from the empty string.
var Missing any = missing{}

// IsAbsent reports whether v is nil or Missing.
func IsAbsent(v any) bool {
	return v == nil || v == Missing
}

// Message overrides the text of a validator's failures.
// It is either Text or Messages.
type Message interface {
	message(key string) (string, bool)
}

// Text replaces the text of every failure key.
type Text string

func (t Text) message(string) (string, bool) { return string(t), true }

// Messages replaces the text of the listed failure keys only. Other keys
// resolve through the ambient table.
type Messages map[string]string

func (m Messages) message(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Resolve returns the text for key: the explicit override first, then the
// ambient table of ctx, then def. Placeholders are filled from params.
func Resolve(ctx context.Context, override Message, key, def string, params map[string]any) string {
	var (
		text string
		ok   bool
	)
	if override != nil {
		text, ok = override.message(key)
	}
	if !ok {
		text, ok = messages.Lookup(ctx, key)
	}
	if !ok {
		text = def
	}
	return messages.Format(text, params)
}

// Option configures a leaf validator.
type Option func(*Settings)

// WithMessage overrides failure text, see Message.
func WithMessage(m Message) Option {
	return func(s *Settings) {
		s.Message = m
	}
}

// WithField attaches failures to the named field instead of the schema key
// the validator runs under. Mostly useful for tuple validators.
func WithField(name string) Option {
	return func(s *Settings) {
		s.Field = name
	}
}

// Settings is the resolved form of a list of Options. Validators living
// outside this package use it to build failures the same way built-in
// validators do.
type Settings struct {
	Message Message
	Field   string
}

// NewSettings applies opts in order.
func NewSettings(opts ...Option) Settings {
	var s Settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// Fail builds a failure with its message resolved for ctx.
func (s Settings) Fail(ctx context.Context, key, def string, params map[string]any) *Invalid {
	return &Invalid{
		Message: Resolve(ctx, s.Message, key, def, params),
		Key:     key,
		Params:  params,
		Field:   s.Field,
	}
}
