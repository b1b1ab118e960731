package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseLocale(t *testing.T) {
	for _, l := range Locales() {
		got, err := ParseLocale(string(l))
		if err != nil || got != l {
			t.Fatalf("%s: got %v err %v", l, got, err)
		}
	}
	if _, err := ParseLocale("fr"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
	if _, err := ParseLocale(""); err == nil {
		t.Fatalf("empty locale must be rejected")
	}
}

func TestKnownContentKey(t *testing.T) {
	for _, k := range ContentKeys() {
		if !KnownContentKey(k) {
			t.Fatalf("%s should be known", k)
		}
	}
	if KnownContentKey("page.blog") {
		t.Fatalf("unknown key accepted")
	}
}

func TestValidationError(t *testing.T) {
	var err error = &ValidationError{Message: "Hero title is required."}
	if !IsValidation(err) {
		t.Fatalf("IsValidation should match")
	}
	wrapped := fmt.Errorf("save: %w", err)
	if !IsValidation(wrapped) {
		t.Fatalf("IsValidation should unwrap")
	}
	if IsValidation(ErrNotFound) {
		t.Fatalf("sentinel is not a validation error")
	}
	if err.Error() != "Hero title is required." {
		t.Fatalf("message lost: %q", err.Error())
	}
}
