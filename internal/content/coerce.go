package content

import (
	"strconv"
	"strings"
)

// Coercion helpers shared by all normalizers. Admin submissions arrive as
// decoded JSON (map[string]any), so every accessor tolerates missing keys,
// nil values and wrong types.

// asMap returns v as an object, or nil.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// child returns the nested object at key, or nil.
func child(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	return asMap(m[key])
}

// textField reads a scalar at key, stringifies and trims it. A missing or
// nil value falls back; a present-but-blank string stays blank so the
// validator surfaces it instead of silently reverting the admin's edit.
func textField(m map[string]any, key, fallback string) string {
	if m == nil {
		return strings.TrimSpace(fallback)
	}
	v, ok := m[key]
	if !ok || v == nil {
		return strings.TrimSpace(fallback)
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return strings.TrimSpace(fallback)
}

func boolField(m map[string]any, key string, fallback bool) bool {
	if m == nil {
		return fallback
	}
	v, ok := m[key]
	if !ok || v == nil {
		return fallback
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b
		}
	case float64:
		return t != 0
	}
	return fallback
}

func intField(m map[string]any, key string, fallback int) int {
	if m == nil {
		return fallback
	}
	if f, ok := toFloat(m[key]); ok {
		return int(f)
	}
	return fallback
}

// numField reads a numeric counter with zero treated as absent: a submitted
// zero falls through to the fallback, and a zero fallback falls through to
// the literal default. Saved counters are therefore never zero, and the
// admin form cannot zero one out.
func numField(m map[string]any, key string, fallback, literal float64) float64 {
	if m != nil {
		if f, ok := toFloat(m[key]); ok && f != 0 {
			return f
		}
	}
	if fallback != 0 {
		return fallback
	}
	return literal
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// listField returns the array at key. The second result reports whether the
// input actually was an array; when it was not, callers keep the fallback
// list wholesale instead of merging per item.
func listField(m map[string]any, key string) ([]any, bool) {
	if m == nil {
		return nil, false
	}
	items, ok := m[key].([]any)
	return items, ok
}

// boundList caps items at max and substitutes the fallback when nothing
// survived filtering. Every bounded list also has a validator floor of 1, so
// an empty result would only ever be rejected downstream.
func boundList[T any](items, fallback []T, max int) []T {
	if len(items) == 0 {
		return copyList(fallback)
	}
	if len(items) > max {
		items = items[:max]
	}
	return items
}

func copyList[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// stringList normalizes a list of free-text entries: trim, drop blanks, cap,
// fall back when empty.
func stringList(m map[string]any, key string, fallback []string, max int) []string {
	items, ok := listField(m, key)
	if !ok {
		return copyList(fallback)
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, _ := it.(string)
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return boundList(out, fallback, max)
}

// innerStrings is stringList for sub-lists that are allowed to be empty
// (e.g. card highlights): no fallback substitution, no floor.
func innerStrings(m map[string]any, key string, fallback []string, max int) []string {
	items, ok := listField(m, key)
	if !ok {
		return copyList(fallback)
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, _ := it.(string)
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}
