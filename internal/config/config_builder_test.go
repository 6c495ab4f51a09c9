package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

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

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// sources yields the documented defaults.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultNotifyTimeout, cfg.Notify.Timeout)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

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

// TestBuild_LaterSourcesOverride verifies that a later config overrides the
// non-zero fields of an earlier one and keeps the rest.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			API:    API{BaseURL: "http://env:8080", RequestTimeout: 10 * time.Second},
			Notify: Notify{Timeout: 2 * time.Second},
		},
		&StructuredConfig{
			API: API{BaseURL: "http://flags:8080"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://flags:8080", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Notify.Timeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	b.withJSON()

	require.Error(t, b.err)
	_, err := b.build()
	require.Error(t, err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies env < flags < JSON priority.
func TestGetStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"workers": map[string]any{"poll_interval": "45s"},
		"log":     map[string]any{"level": "error"},
	})

	setEnvVars(t, map[string]string{
		"API_BASE_URL":          "http://env:8080",
		"API_REQUEST_TIMEOUT":   "11s",
		"WORKERS_POLL_INTERVAL": "5s",
		"LOG_LEVEL":             "info",
	})

	cfg, err := GetStructuredConfig([]string{
		"-a", "http://flags:8080",
		"-log-level", "warn",
		"-c", jsonPath,
	})
	require.NoError(t, err)

	assert.Equal(t, "http://flags:8080", cfg.API.BaseURL)
	assert.Equal(t, 11*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, DefaultNotifyTimeout, cfg.Notify.Timeout)
}

func TestGetStructuredConfig_DefaultBaseURL(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
}

func TestGetStructuredConfig_BadFlags(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-nope"})
	require.Error(t, err)
}
