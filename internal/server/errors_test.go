package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrInvalidAPIKey(t *testing.T) {
	err := &ErrInvalidAPIKey{}
	assert.Equal(t, "invalid API key", err.Error())
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(err))
}

func TestErrReportNotFound(t *testing.T) {
	runID := uuid.New()
	err := &ErrReportNotFound{RunID: runID}
	assert.Equal(t, "report not found: "+runID.String(), err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrHistoryDisabled(t *testing.T) {
	err := &ErrHistoryDisabled{}
	assert.Contains(t, err.Error(), "prediction history is not enabled")
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
}

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "records", Message: "at least one record is required"}
	assert.Equal(t, "validation error: records - at least one record is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
