package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultShutdownTimeout = 5 * time.Second

// ServerAuth holds the settings of the mock backend served by the dev
// server.
type ServerAuth struct {
	MockDelay   time.Duration `validate:"gte=0"`
	MockSignKey string        `validate:"required"`
}

// ServerConfig is the configuration of the development API server. It
// reads the same sources as the client, so both sides agree on the address
// and the mock sign key.
type ServerConfig struct {
	// Version is reported by the version endpoint.
	Version string
	// HTTPAddress is the host:port the server listens on, derived from the
	// client's server address.
	HTTPAddress string `validate:"required,hostname_port"`
	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration `validate:"gt=0"`
	// Auth configures the mock backend behind the API.
	Auth ServerAuth
}

// GetServerConfig builds and validates the dev server config from the
// merged structured configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	if err := validate.Struct(serverCfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidServerConfigs, fieldErrs.Error())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return serverCfg, nil
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Version:         cfg.App.Version,
		HTTPAddress:     listenAddress(cfg.Adapter.HTTPAddress),
		ShutdownTimeout: defaultShutdownTimeout,
		Auth: ServerAuth{
			MockDelay:   cfg.Auth.MockDelay.Std(),
			MockSignKey: cfg.Auth.MockSignKey,
		},
	}
}

// listenAddress reduces a server address, "host:port" or a URL, to the
// host:port part.
func listenAddress(address string) string {
	address = strings.TrimSpace(address)
	if !strings.Contains(address, "://") {
		return strings.TrimSuffix(address, "/")
	}

	u, err := url.Parse(address)
	if err != nil {
		return ""
	}
	return u.Host
}
