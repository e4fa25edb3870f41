// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_IsMatchesByCode(t *testing.T) {
	err := NewProjectTypeNotFoundError("gym")
	sentinel := NewProjectTypeNotFoundError("other")

	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, NewScenarioNotFoundError("gym")))
}

func TestNormalize_PassesThroughWrappedStandardError(t *testing.T) {
	inner := NewReservedIDError("padel")
	wrapped := fmt.Errorf("registering template: %w", inner)

	normalized := Normalize(wrapped)
	assert.Same(t, inner, normalized)
}

func TestNormalize_WrapsPlainError(t *testing.T) {
	normalized := Normalize(errors.New("boom"))

	require.NotNil(t, normalized)
	assert.Equal(t, ErrorCode("INTERNAL_ERROR"), normalized.Code)
	assert.Equal(t, "boom", normalized.Details)
	assert.False(t, normalized.Retryable)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeProjectTypeNotFound, http.StatusNotFound},
		{ErrCodeUnknownProjectType, http.StatusNotFound},
		{ErrCodeScenarioNotFound, http.StatusNotFound},
		{ErrCodeReservedProjectTypeID, http.StatusConflict},
		{ErrCodeBuiltinProtected, http.StatusConflict},
		{ErrCodeTemplateValidationFailed, http.StatusUnprocessableEntity},
		{ErrCodeImportParseFailed, http.StatusUnprocessableEntity},
		{ErrCodeStoreUnavailable, http.StatusServiceUnavailable},
		{ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.code))
		})
	}
}

func TestNewStoreUnavailableError_NilCause(t *testing.T) {
	err := NewStoreUnavailableError(nil)
	assert.Equal(t, "no store configured", err.Details)
	assert.True(t, err.Retryable)

	withCause := NewStoreUnavailableError(errors.New("dial tcp: refused"))
	assert.Equal(t, "dial tcp: refused", withCause.Details)
}
