package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive session duration or an out-of-range
	// bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
