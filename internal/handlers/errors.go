package handlers

import (
	"errors"
	"net/http"

	"github.com/openbooks/ledger_engine/internal/apperrors"
)

// statusForError maps service errors onto HTTP status codes. Handlers log
// with their own context before calling this.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "resource already exists"
	case errors.Is(err, apperrors.ErrImmutable):
		return http.StatusConflict, "journal is posted and immutable"
	case errors.Is(err, apperrors.ErrConcurrentModification):
		return http.StatusConflict, "resource was modified concurrently, reload and retry"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "operation conflicts with current state"
	case errors.Is(err, apperrors.ErrLockTimeout):
		return http.StatusServiceUnavailable, "timed out waiting for a lock, retry the operation"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
