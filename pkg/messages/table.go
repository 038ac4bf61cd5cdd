package messages

import (
	"fmt"
	"regexp"
	"strings"
)

// Table looks up message text by symbolic key.
type Table interface {
	Lookup(key string) (string, bool)
}

// Map is a flat key -> text table.
type Map map[string]string

// Lookup implements Table.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Nested is a table decoded from structured documents. Keys are traversed
// with dots: "schema.missing" reads n["schema"]["missing"], while a literal
// "schema.missing" entry at the top level takes precedence.
type Nested map[string]any

// Lookup implements Table.
func (n Nested) Lookup(key string) (string, bool) {
	if v, ok := n[key]; ok {
		return asText(v)
	}

	parts := strings.Split(key, ".")
	current := map[string]any(n)
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			return asText(next)
		}
		current, ok = asMap(next)
		if !ok {
			return "", false
		}
	}
	return "", false
}

func asText(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

// asMap accepts both map flavours produced by the YAML and JSON decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Nested:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Chain is a layered table: the first table holding the key wins.
type Chain []Table

// Lookup implements Table.
func (c Chain) Lookup(key string) (string, bool) {
	for _, t := range c {
		if t == nil {
			continue
		}
		if v, ok := t.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Empty is a table without entries.
var Empty Table = Map{}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format replaces %{name} placeholders with values from params.
// Placeholders without a matching parameter are kept as is.
func Format(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
