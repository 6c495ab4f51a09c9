// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"API_BASE_URL":        "http://subfinder.internal:9000",
		"API_REQUEST_TIMEOUT": "15s",

		"NOTIFY_TIMEOUT":        "7s",
		"WORKERS_POLL_INTERVAL": "1m",
		"LOG_LEVEL":             "info",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://subfinder.internal:9000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, time.Minute, cfg.Workers.PollInterval)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_BASE_URL": "http://localhost:9999",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Zero(t, cfg.Notify.Timeout)
	assert.Zero(t, cfg.Workers.PollInterval)
	assert.Empty(t, cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_NoVars(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_REQUEST_TIMEOUT": "not-a-duration",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"API_BASE_URL",
		"API_REQUEST_TIMEOUT",
		"NOTIFY_TIMEOUT",
		"WORKERS_POLL_INTERVAL",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
