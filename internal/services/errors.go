package services

import "errors"

// ErrForbidden is returned when the actor fails a role/ownership check.
// It is distinct from not-found: the resource exists but the actor may not
// touch it.
var ErrForbidden = errors.New("permission denied")

// ValidationError is a missing or malformed input field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validation(msg string) error { return &ValidationError{Message: msg} }

// NotFoundError is a missing resource or a failed referential check.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func notFound(msg string) error { return &NotFoundError{Message: msg} }
