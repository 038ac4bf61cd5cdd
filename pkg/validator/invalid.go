package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NoName is the reserved field name for messages not attached to a field,
// including the top-level message in unpacked errors.
const NoName = ""

// Invalid is a validation failure. It carries an optional top-level message
// and an ordered mapping from field name to nested failures. A failure
// without children is a plain message.
type Invalid struct {
	// Message is the resolved, human-readable text.
	Message string
	// Key is the symbolic message key the text was resolved from.
	Key string
	// Params holds the values substituted into the message placeholders.
	Params map[string]any
	// Field, when set, names the field a schema records this failure under.
	Field string

	cause  error
	names  []string
	errors map[string][]*Invalid
}

// NewInvalid returns a failure with the given message.
func NewInvalid(message string) *Invalid {
	return &Invalid{Message: message}
}

// WithCause records the underlying error, reachable through errors.Is/As.
func (e *Invalid) WithCause(err error) *Invalid {
	e.cause = err
	return e
}

// Cause returns the error recorded with WithCause.
func (e *Invalid) Cause() error {
	return e.cause
}

// Add appends failures under name. Existing entries are kept.
func (e *Invalid) Add(name string, errs ...*Invalid) *Invalid {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if e.errors == nil {
			e.errors = make(map[string][]*Invalid)
		}
		if _, ok := e.errors[name]; !ok {
			e.names = append(e.names, name)
		}
		e.errors[name] = append(e.errors[name], err)
	}
	return e
}

// AddMessage appends a plain message under name.
func (e *Invalid) AddMessage(name, message string) *Invalid {
	return e.Add(name, NewInvalid(message))
}

// Merge appends every nested failure of other to e, field by field.
// The top-level message of other, if any, is appended under NoName.
func (e *Invalid) Merge(other *Invalid) *Invalid {
	if other == nil || other == e {
		return e
	}
	if other.Message != "" {
		e.AddMessage(NoName, other.Message)
	}
	for _, name := range other.names {
		e.Add(name, other.errors[name]...)
	}
	return e
}

// HasErrors reports whether e has nested failures.
func (e *Invalid) HasErrors() bool {
	return len(e.names) > 0
}

// Fields returns the names of nested failures in insertion order.
func (e *Invalid) Fields() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Has reports whether there are failures recorded under name.
func (e *Invalid) Has(name string) bool {
	return len(e.errors[name]) > 0
}

// Get returns the failures recorded under name.
func (e *Invalid) Get(name string) []*Invalid {
	return e.errors[name]
}

// Unpack flattens the failure tree. Without nested failures and with
// forceDict unset it returns the message alone and a nil map. Otherwise it
// returns a map seeded with the top-level message under NoName, extended
// with every nested failure: nested trees are merged into the same map,
// plain messages are appended under their field name. Empty plain messages
// carry nothing and are skipped.
func (e *Invalid) Unpack(forceDict bool) (string, map[string][]string) {
	if !e.HasErrors() && !forceDict {
		return e.Message, nil
	}

	result := make(map[string][]string)
	if e.Message != "" {
		result[NoName] = []string{e.Message}
	}
	for _, name := range e.names {
		for _, entry := range e.errors[name] {
			msg, nested := entry.Unpack(false)
			if nested != nil {
				for k, v := range nested {
					result[k] = append(result[k], v...)
				}
				continue
			}
			if msg != "" {
				result[name] = append(result[name], msg)
			}
		}
	}
	return "", result
}

// UnpackErrors returns the failure as a plain field -> messages map.
func (e *Invalid) UnpackErrors() map[string][]string {
	_, result := e.Unpack(true)
	return result
}

// Error implements the error interface.
func (e *Invalid) Error() string {
	if !e.HasErrors() {
		if e.Message == "" {
			return "invalid value"
		}
		return e.Message
	}

	unpacked := e.UnpackErrors()
	names := make([]string, 0, len(unpacked))
	for name := range unpacked {
		if name != NoName {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(unpacked[name], ", ")))
	}

	head := e.Message
	if head == "" {
		head = "validation failed"
	}
	if len(parts) == 0 {
		return head
	}
	return head + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes the cause and the nested failures to errors.Is/As.
func (e *Invalid) Unwrap() []error {
	var errs []error
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	for _, name := range e.names {
		for _, entry := range e.errors[name] {
			errs = append(errs, entry)
		}
	}
	return errs
}

// AsInvalid extracts an *Invalid from err.
func AsInvalid(err error) (*Invalid, bool) {
	if err == nil {
		return nil, false
	}
	var inv *Invalid
	if errors.As(err, &inv) {
		return inv, true
	}
	return nil, false
}

// IsInvalid reports whether err is or wraps an *Invalid.
func IsInvalid(err error) bool {
	_, ok := AsInvalid(err)
	return ok
}
