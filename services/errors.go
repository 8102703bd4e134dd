package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks an identifier that does not resolve to a stored
	// record (quiz, tip or user).
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks a failed authorization check. It is terminal, not
	// retryable.
	ErrForbidden = errors.New("forbidden")
)

// FieldError is one rejected field together with the value the caller sent,
// so forms can be repopulated.
type FieldError struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ValidationError carries every field that failed domain validation.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// StoreError wraps an underlying persistence failure. It is not decomposed
// further at this layer; handlers map it to a generic error response.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
