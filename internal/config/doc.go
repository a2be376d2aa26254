// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with first-non-zero-wins precedence (env, then flags,
// then JSON), defaults are applied to optional settings, and the result is
// validated before use.
package config
