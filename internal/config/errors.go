package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingSessionSecret indicates that no session cookie sign secret
	// was supplied by any configuration source. The server refuses to start
	// without one: an unsigned session cookie would be forgeable.
	ErrMissingSessionSecret = errors.New("missing session secret")
)
