// Package common defines sentinel errors shared across forumd layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrStorage    = errors.New("storage error")

	// Service-level errors (generic flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Domain validation errors. Malformed request bodies never leave the
	// HTTP boundary, so they have no sentinel of their own.
	ErrValidation = errors.New("validation error")

	// Deliberately unimplemented functionality (post replies).
	ErrNotImplemented = errors.New("not implemented")
)
