package helpers

import (
	"errors"
	"net/http"

	"photocatalog/internal/domain"
)

// StatusForError maps a service error to an HTTP status and API error code.
// Errors that are not domain sentinels map to 500 internal_error.
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, ErrCodeBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrResourceUnavailable):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict, ErrCodeConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
