package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InvalidIDError reports a malformed entity identifier. It is raised before
// any store access.
type InvalidIDError struct {
	Entity string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid %s ID", e.Entity)
}

// NotFoundError reports that no document matched the identifier.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field errors for a rejected payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
