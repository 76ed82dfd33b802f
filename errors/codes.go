package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Copy errors
const (
	// ErrCodeTypeMismatch indicates a source value cannot be assigned to the target field.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidTarget indicates the copy target is not an addressable struct.
	ErrCodeInvalidTarget ErrorCode = "INVALID_TARGET"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value does not match the expected format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
