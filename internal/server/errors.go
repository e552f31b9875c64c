package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrJobNotFound indicates the job does not exist.
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrProfileNotFound indicates the profile does not exist.
type ErrProfileNotFound struct {
	ProfileID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ProfileID)
}

// ErrTextTooLong indicates an input text exceeded the serving cap.
type ErrTextTooLong struct {
	Field string
	Limit int
}

func (e *ErrTextTooLong) Error() string {
	return fmt.Sprintf("%s exceeds the %d character limit", e.Field, e.Limit)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// ErrStorageUnavailable indicates a storage-backed endpoint was called
// without a configured database.
type ErrStorageUnavailable struct{}

func (e *ErrStorageUnavailable) Error() string {
	return "storage is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrJobNotFound, *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrTextTooLong:
		return http.StatusBadRequest
	case *ErrStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
