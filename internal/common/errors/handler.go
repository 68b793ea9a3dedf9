// internal/common/errors/handler.go
package errors

import "time"

// Logger is the minimal logging surface the handler needs; satisfied by
// the project logger without importing it here.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// Normalize ensures any error is a StandardError so callers get a stable
// code, category and retry policy regardless of origin.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
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

// LogError logs a failed operation with the error's full metadata.
func LogError(log Logger, operation string, err error) *StandardError {
	stdErr := Normalize(err)
	log.Error("operation failed", map[string]interface{}{
		"operation": operation,
		"code":      string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
		"retries":   GetRetryCount(stdErr.Code),
		"category":  GetErrorCategory(stdErr.Code),
	})
	return stdErr
}
