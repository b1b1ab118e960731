package domain

import "errors"

var (
	ErrNotFound          = errors.New("content: not found")
	ErrUnknownContentKey = errors.New("content: unknown content key")
	ErrUnknownLocale     = errors.New("content: unknown locale")
)

// ValidationError carries the first violated rule's message. The admin UI
// keys off substrings of the message to decide which form section to open,
// so the text is part of the contract.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
