package config

import "errors"

// Validation errors returned when a merged configuration group is invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a non-positive upload limit or timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStegoConfigs indicates an invalid carrier pixel limit.
	ErrInvalidStegoConfigs = errors.New("invalid stego configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
