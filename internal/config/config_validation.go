// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallback values applied by applyDefaults when a setting was supplied by no
// configuration source.
const (
	defaultHTTPAddress          = "localhost:8080"
	defaultSessionTTL           = 24 * time.Hour
	defaultSessionSweepInterval = time.Hour
	defaultTokenIssuer          = "tasktracker"
	defaultEnvironment          = "development"
)

// applyDefaults fills in fallback values for optional settings that were not
// provided by any configuration source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = defaultSessionTTL
	}
	if cfg.App.SessionSweepInterval == 0 {
		cfg.App.SessionSweepInterval = defaultSessionSweepInterval
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = defaultEnvironment
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSecret == "" {
		return ErrMissingSessionSecret
	}

	return nil
}
