package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(Defaults())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "http mode without sign key", mutate: func(c *ClientConfig) {
			c.Auth.Mode = AuthModeHTTP
			c.Auth.MockSignKey = ""
		}},
		{name: "missing address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "unknown auth mode", mutate: func(c *ClientConfig) { c.Auth.Mode = "ldap" }, wantErr: ErrInvalidAuthConfigs},
		{name: "mock mode without sign key", mutate: func(c *ClientConfig) { c.Auth.MockSignKey = "" }, wantErr: ErrInvalidAuthConfigs},
		{name: "negative mock delay", mutate: func(c *ClientConfig) { c.Auth.MockDelay = -time.Second }, wantErr: ErrInvalidAuthConfigs},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "file::memory:?cache=shared" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative refresh interval", mutate: func(c *ClientConfig) { c.Home.RefreshInterval = -time.Minute }, wantErr: ErrInvalidHomeConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := validClientConfig()
			tt.mutate(cfg)

			// Act
			err := cfg.validate()

			// Assert
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_MapsStructuredConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_DEFAULT_HEADERS": "X-Client:tui",
		"AUTH_MODE":               "HTTP",
	})

	cfg, err := GetClientConfig([]string{"-a", "https://api.example.com", "-refresh-interval", "30s"})

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, map[string]string{"X-Client": "tui"}, cfg.Adapter.DefaultHeaders)
	assert.Equal(t, AuthModeHTTP, cfg.Auth.Mode)
	assert.Equal(t, 30*time.Second, cfg.Home.RefreshInterval)
	assert.Equal(t, "dev", cfg.App.Version)
}

func TestGetClientConfig_InvalidFlag(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-auth-mode", "ldap"})

	require.ErrorIs(t, err, ErrInvalidAuthConfigs)
	assert.Nil(t, cfg)
}
