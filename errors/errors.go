package errors

import (
	"fmt"
)

// AppError is the unified propkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// TypeMismatch creates a new AppError for a field whose source value type cannot
// be assigned to the target field type.
func TypeMismatch(field, sourceType, targetType string) *AppError {
	return &AppError{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("Cannot assign %s to %s for field %s.", sourceType, targetType, field),
		Details: map[string]any{"field": field, "source_type": sourceType, "target_type": targetType},
	}
}

// InvalidTarget creates a new AppError for a copy target that cannot be written.
func InvalidTarget(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidTarget,
		Message: fmt.Sprintf("Invalid copy target: %s", reason),
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// InvalidFormat creates a new AppError for a value in an unexpected format.
func InvalidFormat(field, expectedFormat string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidFormat,
		Message: fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedFormat),
		Details: map[string]any{"field": field, "expected_format": expectedFormat},
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "An unexpected error occurred.",
		Cause:   cause,
	}
}
