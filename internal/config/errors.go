package config

import "errors"

// Validation errors returned by the per-role config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN, unsupported in-memory DSN, or a missing
	// backup directory/region).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing app name or API key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRevealConfigs indicates invalid reveal timing settings
	// (for example, a tick not shorter than the visible duration).
	ErrInvalidRevealConfigs = errors.New("invalid reveal configuration")
	// ErrInvalidHealthConfigs indicates invalid probe timing settings.
	ErrInvalidHealthConfigs = errors.New("invalid health configuration")
	// ErrInvalidServerConfigs indicates invalid server listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
