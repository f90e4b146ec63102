package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates an unknown auth mode or a mock
	// backend without a sign key.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidHomeConfigs indicates a negative refresh interval.
	ErrInvalidHomeConfigs = errors.New("invalid home configuration")
	// ErrInvalidServerConfigs indicates a dev server address that is not
	// host:port or a missing mock sign key.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
