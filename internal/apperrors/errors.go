package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the requested operation conflicts with the
// current state of the resource (e.g., posting an already posted journal).
var ErrConflict = errors.New("operation conflicts with current resource state")

// ErrConcurrentModification indicates that the resource was changed by another
// actor since it was loaded. The caller should re-read and retry the whole operation.
var ErrConcurrentModification = errors.New("resource was modified concurrently")

// ErrLockTimeout indicates that a required row lock could not be acquired
// within the configured wait. Retryable by re-issuing the whole operation.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// ErrImmutable indicates an attempt to mutate a locked (posted/reversed) journal.
var ErrImmutable = errors.New("resource is locked and immutable")

// AppError carries an HTTP-ish status code alongside the wrapped cause so
// repositories can classify failures without handlers re-inspecting pg errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that unwraps to ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
