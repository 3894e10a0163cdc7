package connection

import "errors"

var (
	// ErrValidation is returned by Set for an address outside the private
	// ranges or a port outside [1,65535]. Nothing is persisted in that case.
	ErrValidation = errors.New("invalid connection endpoint")

	// ErrUnconfigured is returned by BaseURL until both endpoint fields
	// have been set.
	ErrUnconfigured = errors.New("backup server is not configured")
)
