package errors

import (
	stderrors "errors"
)

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether any AppError in err's chain, including AppError causes and
// errors joined with errors.Join, carries the given code.
func Is(err error, code ErrorCode) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *AppError:
		if e == nil {
			return false
		}
		if e.Code == code {
			return true
		}
		return Is(e.Cause, code)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if Is(inner, code) {
				return true
			}
		}
		return false
	default:
		return Is(stderrors.Unwrap(err), code)
	}
}

// Wrap returns err as an AppError. AppErrors anywhere in the chain are returned
// as-is; any other error becomes an INTERNAL_ERROR with err as its cause.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
