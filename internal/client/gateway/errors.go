package gateway

import "errors"

var (
	// ErrUnavailable means the gateway could not be reached at all.
	ErrUnavailable = errors.New("gateway unavailable")

	// ErrUnauthorized means the gateway rejected the credentials or session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadRequest means the gateway rejected the request itself,
	// e.g. an unknown collection name.
	ErrBadRequest = errors.New("bad request")

	// ErrServer means the gateway failed internally.
	ErrServer = errors.New("gateway error")
)
