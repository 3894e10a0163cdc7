package http

import "errors"

var (
	// ErrMissingAPIKey is returned to clients that call an /api route
	// without the X-API-KEY header.
	ErrMissingAPIKey = errors.New("missing X-API-KEY header")

	// ErrWrongAPIKey is returned when the presented key does not match the
	// configured one.
	ErrWrongAPIKey = errors.New("wrong API key")
)
