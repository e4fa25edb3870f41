// Package errors provides the standardized error taxonomy for the
// business-plan registry and calculation engine.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Configuration errors: surfaced at registration time, never later.
	ErrCodeReservedProjectTypeID    ErrorCode = "RESERVED_PROJECT_TYPE_ID"
	ErrCodeTemplateValidationFailed ErrorCode = "TEMPLATE_VALIDATION_FAILED"
	ErrCodeBuiltinProtected         ErrorCode = "BUILTIN_TEMPLATE_PROTECTED"

	// Unknown-entity errors: signal a registry/UI desync, never swallowed.
	ErrCodeProjectTypeNotFound ErrorCode = "PROJECT_TYPE_NOT_FOUND"
	ErrCodeUnknownProjectType  ErrorCode = "UNKNOWN_PROJECT_TYPE"
	ErrCodeScenarioNotFound    ErrorCode = "SCENARIO_NOT_FOUND"

	// Import / persistence errors.
	ErrCodeImportParseFailed ErrorCode = "IMPORT_PARSE_FAILED"
	ErrCodeStoreUnavailable  ErrorCode = "STORE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is matches two StandardErrors by code so callers can use errors.Is
// against a constructor-produced sentinel.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	return ok && t.Code == e.Code
}

// ==========================
// 2. Error Constructors
// ==========================

// NewReservedIDError rejects registering a user template under a built-in id.
func NewReservedIDError(typeID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReservedProjectTypeID,
		Message:   "Project type id is reserved by a built-in template",
		Details:   typeID,
		Retryable: false,
		Metadata:  map[string]interface{}{"typeId": typeID},
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateValidationError rejects a malformed project type schema.
func NewTemplateValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateValidationFailed,
		Message:   "Project type schema failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBuiltinProtectedError rejects deleting or overwriting a built-in template.
func NewBuiltinProtectedError(typeID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBuiltinProtected,
		Message:   "Built-in templates cannot be modified or deleted",
		Details:   typeID,
		Retryable: false,
		Metadata:  map[string]interface{}{"typeId": typeID},
		Timestamp: time.Now().UTC(),
	}
}

// NewProjectTypeNotFoundError reports a lookup miss in the registry.
func NewProjectTypeNotFoundError(typeID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProjectTypeNotFound,
		Message:   "Project type not found",
		Details:   typeID,
		Retryable: false,
		Metadata:  map[string]interface{}{"typeId": typeID},
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownProjectTypeError reports a calculation requested without a
// resolvable schema. This is fatal to the call.
func NewUnknownProjectTypeError(typeID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownProjectType,
		Message:   "Cannot calculate for unknown project type",
		Details:   typeID,
		Retryable: false,
		Metadata:  map[string]interface{}{"typeId": typeID},
		Timestamp: time.Now().UTC(),
	}
}

// NewScenarioNotFoundError reports a missing saved scenario.
func NewScenarioNotFoundError(scenarioID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeScenarioNotFound,
		Message:   "Scenario not found",
		Details:   scenarioID,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewImportParseError reports an unreadable configuration payload.
func NewImportParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeImportParseFailed,
		Message:   "Configuration import payload could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreUnavailableError reports a failed persistence operation. A nil
// cause means no store is configured at all.
func NewStoreUnavailableError(err error) *StandardError {
	details := "no store configured"
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Persistent store unavailable",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
