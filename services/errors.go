package services

import (
	"errors"
	"fmt"
)

// Business-rule and lookup failures surfaced by the services layer.
// Controllers map these onto HTTP statuses; none of them are retried.
var (
	ErrNotFound          = errors.New("record not found")
	ErrNotClaimable      = errors.New("item is not open for claims")
	ErrDuplicateClaim    = errors.New("you have already claimed this item")
	ErrAlreadyDecided    = errors.New("claim has already been decided")
	ErrInvalidAction     = errors.New("invalid claim action")
	ErrInvalidTransition = errors.New("invalid item status")
)

// ValidationError reports a bad or missing input value for a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
