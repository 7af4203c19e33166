// Package server provides the HTTP REST API for the fraud scoring engine.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidAPIKey indicates the presented API key did not match any
// configured key hash
type ErrInvalidAPIKey struct{}

func (e *ErrInvalidAPIKey) Error() string {
	return "invalid API key"
}

// ErrReportNotFound indicates no stored report exists for the run ID
type ErrReportNotFound struct {
	RunID uuid.UUID
}

func (e *ErrReportNotFound) Error() string {
	return fmt.Sprintf("report not found: %s", e.RunID)
}

// ErrHistoryDisabled indicates prediction history endpoints were called
// without a configured database
type ErrHistoryDisabled struct{}

func (e *ErrHistoryDisabled) Error() string {
	return "prediction history is not enabled (DATABASE_URL not configured)"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidAPIKey:
		return http.StatusUnauthorized
	case *ErrReportNotFound:
		return http.StatusNotFound
	case *ErrHistoryDisabled:
		return http.StatusServiceUnavailable
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
