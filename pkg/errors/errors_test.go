package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/cthulhu-engineer/goit-cs-hw-06/pkg/errors"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apperrors.GetHTTPStatus(apperrors.NewNotFoundError("message", "m1")))
	assert.Equal(t, http.StatusBadRequest, apperrors.GetHTTPStatus(apperrors.NewValidationError("payload", "empty")))
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.GetHTTPStatus(apperrors.NewUnavailableError("ingest server", nil)))
	assert.Equal(t, http.StatusInternalServerError, apperrors.GetHTTPStatus(fmt.Errorf("plain error")))
}

func TestErrorChecksThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", apperrors.NewNotFoundError("message", "m1"))

	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsValidation(err))
	assert.Equal(t, "NOT_FOUND", apperrors.GetErrorCode(err))
}

func TestIsUnavailable(t *testing.T) {
	err := fmt.Errorf("forwarding message: %w", apperrors.NewUnavailableError("ingest server", nil))

	assert.True(t, apperrors.IsUnavailable(err))
	assert.False(t, apperrors.IsUnavailable(fmt.Errorf("plain error")))
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("disk gone")
	err := apperrors.NewInternalError("flush failed", cause)

	assert.Equal(t, http.StatusInternalServerError, apperrors.GetHTTPStatus(err))
	assert.Equal(t, "INTERNAL_ERROR", apperrors.GetErrorCode(err))
	assert.ErrorIs(t, err, cause)
}

func TestToResponse(t *testing.T) {
	resp := apperrors.ToResponse(apperrors.NewValidationError("payload", "empty payload"))

	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Contains(t, resp.Message, "empty payload")
}
