package formdata

import (
	"fmt"
	"sort"
	"strings"
)

// Nest turns a flat mapping with separator-delimited keys into nested maps:
// {"user.name": "bob"} becomes {"user": {"name": "bob"}}. A key that is both
// a value and a prefix of other keys fails with ErrKeyConflict, whatever the
// type of the value. Groups are always new maps, so data is never modified.
func Nest(data map[string]any, separator string) (map[string]any, error) {
	if separator == "" {
		return nil, ErrEmptySeparator
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make(map[string]any)
	groups := make(map[string]struct{})
	for _, key := range keys {
		levels := strings.Split(key, separator)
		node := result
		for i, level := range levels[:len(levels)-1] {
			path := strings.Join(levels[:i+1], separator)
			next, exists := node[level]
			if !exists {
				child := make(map[string]any)
				node[level] = child
				groups[path] = struct{}{}
				node = child
				continue
			}
			if _, isGroup := groups[path]; !isGroup {
				return nil, fmt.Errorf("%w: %q", ErrKeyConflict, path)
			}
			node = next.(map[string]any)
		}

		last := levels[len(levels)-1]
		if _, exists := node[last]; exists {
			return nil, fmt.Errorf("%w: %q", ErrKeyConflict, key)
		}
		node[last] = data[key]
	}
	return result, nil
}

// Unnest is the inverse of Nest: nested maps are flattened into keys joined
// with separator. Empty nested maps disappear.
func Unnest(data map[string]any, separator string) map[string]any {
	result := make(map[string]any)
	unnestInto(result, "", data, separator)
	return result
}

func unnestInto(result map[string]any, prefix string, data map[string]any, separator string) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + separator + k
		}
		if m, ok := v.(map[string]any); ok {
			unnestInto(result, key, m, separator)
			continue
		}
		result[key] = v
	}
}
