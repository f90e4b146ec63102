package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported values of [Auth.Mode].
const (
	AuthModeMock = "mock"
	AuthModeHTTP = "http"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is shown in the about window of binaries built without
	// version metadata.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string `validate:"required"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `validate:"gt=0"`
	// DefaultHeaders are attached to every outbound request.
	DefaultHeaders map[string]string
}

// ClientAuth selects the authentication backend.
type ClientAuth struct {
	Mode        string        `validate:"oneof=mock http"`
	MockDelay   time.Duration `validate:"gte=0"`
	MockSignKey string        `validate:"required_if=Mode mock"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string `validate:"required"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientHome holds home feed settings.
type ClientHome struct {
	// RefreshInterval is the auto-refresh period; zero disables it.
	RefreshInterval time.Duration `validate:"gte=0"`
}

// ClientLog holds logging settings.
type ClientLog struct {
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Auth selects the authentication backend.
	Auth ClientAuth
	// Storage contains client storage settings.
	Storage ClientStorage
	// Home contains home feed settings.
	Home ClientHome
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout.Std(),
			DefaultHeaders: cfg.Adapter.DefaultHeaders,
		},
		Auth: ClientAuth{
			Mode:        strings.ToLower(cfg.Auth.Mode),
			MockDelay:   cfg.Auth.MockDelay.Std(),
			MockSignKey: cfg.Auth.MockSignKey,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Home: ClientHome{RefreshInterval: cfg.Home.RefreshInterval.Std()},
		Log:  ClientLog{File: cfg.Log.File},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks every group of the client config and returns the sentinel
// of the first group that fails, wrapping the validator's field errors.
func (c *ClientConfig) validate() error {
	groups := []struct {
		value    any
		sentinel error
	}{
		{c.Adapter, ErrInvalidAdapterConfigs},
		{c.Auth, ErrInvalidAuthConfigs},
		{c.Storage, ErrInvalidStorageConfigs},
		{c.Home, ErrInvalidHomeConfigs},
	}

	for _, g := range groups {
		if err := validate.Struct(g.value); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				return fmt.Errorf("%w: %s", g.sentinel, fieldErrs.Error())
			}
			return fmt.Errorf("%w: %w", g.sentinel, err)
		}
	}

	if strings.Contains(strings.ToLower(c.Storage.DB.DSN), ":memory:") {
		return fmt.Errorf("%w: in-memory DSN loses the session on exit", ErrInvalidStorageConfigs)
	}

	return nil
}
