// Package errors provides standardized error handling for the intelligence engine.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeAIProxyUnavailable ErrorCode = "AI_PROXY_UNAVAILABLE"
	ErrCodeAIProxyTimeout     ErrorCode = "AI_PROXY_TIMEOUT"
	ErrCodeAIResponseInvalid  ErrorCode = "AI_RESPONSE_INVALID"

	ErrCodeIntentParsingFailed ErrorCode = "INTENT_PARSING_FAILED"

	ErrCodeEntityExtractionFailed ErrorCode = "ENTITY_EXTRACTION_FAILED"

	ErrCodePlanValidationFailed ErrorCode = "PLAN_VALIDATION_FAILED"
	ErrCodePlanCycleDetected    ErrorCode = "PLAN_CYCLE_DETECTED"
	ErrCodePlanNotFound         ErrorCode = "PLAN_NOT_FOUND"

	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"

	ErrCodeEpisodeFlushFailed ErrorCode = "EPISODE_FLUSH_FAILED"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeToolExecutionFailed ErrorCode = "TOOL_EXECUTION_FAILED"
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

// ==========================
// Error Constructors
// ==========================

// NewAIProxyUnavailableError creates a retryable upstream AI error.
func NewAIProxyUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAIProxyUnavailable,
		Message:   "AI proxy request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAIProxyTimeoutError creates a retryable upstream AI timeout error.
func NewAIProxyTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeAIProxyTimeout,
		Message:   "AI proxy call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAIResponseInvalidError creates a non-retryable malformed completion error.
func NewAIResponseInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAIResponseInvalid,
		Message:   "AI completion did not contain a usable payload",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewIntentParsingFailedError creates a retryable intent parsing error.
func NewIntentParsingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeIntentParsingFailed,
		Message:   "Intent parsing API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlanValidationFailedError creates a non-retryable plan schema error.
func NewPlanValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePlanValidationFailed,
		Message:   "Generated plan failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlanCycleDetectedError creates a non-retryable plan construction error.
func NewPlanCycleDetectedError(planID string) *StandardError {
	return &StandardError{
		Code:      ErrCodePlanCycleDetected,
		Message:   "Plan dependency graph contains a cycle",
		Details:   fmt.Sprintf("planId: %s", planID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlanNotFoundError creates a non-retryable lookup error.
func NewPlanNotFoundError(planID string) *StandardError {
	return &StandardError{
		Code:      ErrCodePlanNotFound,
		Message:   "Plan not found",
		Details:   fmt.Sprintf("planId: %s", planID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session backend error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable database insert error.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(query string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", query, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEpisodeFlushFailedError creates a retryable episode sink error.
func NewEpisodeFlushFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEpisodeFlushFailed,
		Message:   "Episode batch flush failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewToolExecutionFailedError creates a non-retryable tool failure; the plan
// loop marks the task blocked rather than retrying.
func NewToolExecutionFailedError(tool string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeToolExecutionFailed,
		Message:   fmt.Sprintf("Tool '%s' execution failed", tool),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeAIProxyUnavailable,
		ErrCodeIntentParsingFailed,
		ErrCodeSessionStoreFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeDatabaseInsertFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeEpisodeFlushFailed,
		ErrCodeNotificationSendFailed:
		return 3

	case ErrCodeAIProxyTimeout:
		return 1

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "AI_") || strings.Contains(codeStr, "INTENT"):
		return "AI"
	case strings.Contains(codeStr, "PLAN"):
		return "PLANNING"
	case strings.Contains(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "EPISODE"):
		return "EPISODES"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "TOOL"):
		return "EXECUTION"
	default:
		return "OTHER"
	}
}
