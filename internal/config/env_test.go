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
	envVars := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_VERSION": "1.2.3",

		"ADAPTER_ADDRESS":         "https://api.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_DEFAULT_HEADERS": "X-Client:tui,X-Tenant:demo",

		"AUTH_MODE":          "http",
		"AUTH_MOCK_DELAY":    "250ms",
		"AUTH_MOCK_SIGN_KEY": "secret",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/tmp/client.db",

		"HOME_REFRESH_INTERVAL": "1m",
		"LOG_FILE":              "/tmp/client.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout.Std())
	assert.Equal(t, map[string]string{"X-Client": "tui", "X-Tenant": "demo"}, cfg.Adapter.DefaultHeaders)

	assert.Equal(t, "http", cfg.Auth.Mode)
	assert.Equal(t, 250*time.Millisecond, cfg.Auth.MockDelay.Std())
	assert.Equal(t, "secret", cfg.Auth.MockSignKey)

	assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Home.RefreshInterval.Std())
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"AUTH_MODE":       "mock",
		"ADAPTER_ADDRESS": "localhost:8080",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.Auth.Mode)
	assert.Zero(t, cfg.Auth.MockDelay)
	assert.Empty(t, cfg.Auth.MockSignKey)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Nil(t, cfg.Adapter.DefaultHeaders)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{"1h", time.Hour},
		{"30m", 30 * time.Minute},
		{"45s", 45 * time.Second},
		{"1h30m", 90 * time.Minute},
		{"500ms", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"HOME_REFRESH_INTERVAL": tt.input,
			})

			cfg, err := parseEnv()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Home.RefreshInterval.Std())
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_DEFAULT_HEADERS",

		"AUTH_MODE",
		"AUTH_MOCK_DELAY",
		"AUTH_MOCK_SIGN_KEY",

		"STORAGE_DB_DSN",

		"HOME_REFRESH_INTERVAL",
		"LOG_FILE",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
