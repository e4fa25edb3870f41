// internal/common/errors/handler.go
package errors

import (
	"errors"
	"net/http"
	"time"
)

// Normalize ensures any error surfaces as a StandardError, unwrapping
// wrapped chains first.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the status returned at the API boundary.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeProjectTypeNotFound, ErrCodeUnknownProjectType, ErrCodeScenarioNotFound:
		return http.StatusNotFound
	case ErrCodeReservedProjectTypeID, ErrCodeBuiltinProtected:
		return http.StatusConflict
	case ErrCodeTemplateValidationFailed, ErrCodeImportParseFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
