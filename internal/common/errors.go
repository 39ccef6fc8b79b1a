package common

import "errors"

// Sentinel errors shared across client and server layers. Callers should use
// errors.Is to match these values.
var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid, malformed, or revoked token).
	ErrInvalidToken = errors.New("invalid token")

	// Gateway collection errors.
	ErrUnknownCollection = errors.New("unknown collection")
)
