package content

import "fmt"

// Validators are ordered sequences of checks with first-error-wins
// semantics. The admin UI auto-expands the form section named in the
// message, so check order is part of the contract: keep new rules after
// existing ones within a section.

type check func() string

// firstError evaluates checks in order and returns the first non-empty
// message, or "" when the document is valid.
func firstError(checks ...check) string {
	for _, c := range checks {
		if msg := c(); msg != "" {
			return msg
		}
	}
	return ""
}

func requireText(v, label string) check {
	return func() string {
		if v == "" {
			return label + " is required."
		}
		return ""
	}
}

func requireLink(v, label string) check {
	return func() string {
		if v == "" {
			return label + " is required."
		}
		if !IsValidLink(v) {
			return label + " must start with / or http(s):// and be at most 400 characters."
		}
		return ""
	}
}

// requireListBounds re-checks what the normalizer already guarantees; the
// floor only trips on a first-ever save with no fallback history.
func requireListBounds(n int, label string, max int) check {
	return func() string {
		if n < 1 {
			return label + " must have at least one entry."
		}
		if n > max {
			return fmt.Sprintf("%s must have at most %d entries.", label, max)
		}
		return ""
	}
}
