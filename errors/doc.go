// Package errors provides the structured error type shared by propkit packages.
// Every failure carries a machine-readable ErrorCode, a human-readable message,
// optional details and an optional underlying cause.
package errors
