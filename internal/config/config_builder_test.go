package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies first-non-zero-wins merging across
// sources.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App: App{SessionSecret: "from-env"},
		},
		&StructuredConfig{
			App:    App{SessionSecret: "from-flags", TokenIssuer: "issuer-from-flags"},
			Server: Server{HTTPAddress: "0.0.0.0:9000"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// The earlier source wins for SessionSecret; later sources fill gaps.
	assert.Equal(t, "from-env", cfg.App.SessionSecret)
	assert.Equal(t, "issuer-from-flags", cfg.App.TokenIssuer)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
}

// TestBuild_AppliesDefaults verifies that optional settings missing from all
// sources get their fallback values.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{SessionSecret: "secret"},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultSessionTTL, cfg.App.SessionTTL)
	assert.Equal(t, defaultSessionSweepInterval, cfg.App.SessionSweepInterval)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultEnvironment, cfg.App.Environment)
}

// TestBuild_DefaultsDoNotOverrideProvidedValues verifies that defaults only
// fill genuine gaps.
func TestBuild_DefaultsDoNotOverrideProvidedValues(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			SessionSecret: "secret",
			SessionTTL:    2 * time.Hour,
			Environment:   "production",
		},
		Server: Server{HTTPAddress: "0.0.0.0:9000"},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
}

// TestBuild_MissingSessionSecret verifies that the builder refuses a config
// without a session cookie sign secret.
func TestBuild_MissingSessionSecret(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:8080"},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// earlier source supplied a JSON file path.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_PathFromEarlierSource verifies that withJSON loads and appends
// the file referenced by an earlier source.
func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"session_secret": "from-json",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].App.SessionSecret)
}

// TestWithJSON_UnreadableFile verifies that a bad path is recorded as a
// builder error.
func TestWithJSON_UnreadableFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_AppendsEnvConfig verifies that environment values land in the
// builder's config list.
func TestWithEnv_AppendsEnvConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SESSION_SECRET": "env-secret",
	})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.SessionSecret)
}
