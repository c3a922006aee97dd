package config

import "errors"

// Validation errors returned when a merged configuration is incomplete.
var (
	// ErrMissingTokenSignKey indicates the server cannot issue JWTs because
	// no signing key was configured.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidLookupConfigs indicates invalid product lookup settings.
	ErrInvalidLookupConfigs = errors.New("invalid lookup configuration")
)
