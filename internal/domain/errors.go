package domain

import (
	"errors"
	"fmt"
)

// Error kind sentinels. Every error produced by the domain and application
// layers matches exactly one of them with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Validation reasons carried by ValidationError.
var (
	ErrEmptyField        = errors.New("required field is empty")
	ErrInvalidInterval   = errors.New("check-out must be after check-in")
	ErrRoomHotelMismatch = errors.New("room does not belong to hotel")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidDuration   = errors.New("stay duration must be positive")
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrInvalidPrice      = errors.New("price per night must be positive")
)

// ValidationError reports caller-supplied data that violates a domain rule.
type ValidationError struct {
	Reason  error
	Message string
}

// NewValidationError creates a ValidationError with a generic reason.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationErrorf creates a ValidationError for the given reason.
func NewValidationErrorf(reason error, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes the reason so callers can match it with errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Is reports whether target is the validation kind sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewInvalidStateError reports a rejected status transition.
func NewInvalidStateError(from, to string) *ValidationError {
	return NewValidationErrorf(ErrInvalidTransition, "cannot transition from %s to %s", from, to)
}

// NotFoundError reports an identifier that does not resolve.
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFoundError creates a NotFoundError for the given entity and id.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// Is reports whether target is the not-found kind sentinel.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError reports a write rejected because the stored state changed underneath it.
type ConflictError struct {
	Message string
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is reports whether target is the conflict kind sentinel.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
