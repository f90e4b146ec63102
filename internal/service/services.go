package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/internal/config"
)

// Services bundles the capabilities injected into the feature reducers.
type Services struct {
	Auth    AuthService
	Home    HomeService
	Profile ProfileService
}

// NewServices selects the backend named by authCfg.Mode: the offline mock
// or the server API reached through network.
func NewServices(authCfg config.ClientAuth, network adapter.NetworkClient) (*Services, error) {
	switch authCfg.Mode {
	case config.AuthModeMock:
		return NewMockServices(authCfg.MockDelay, authCfg.MockSignKey), nil
	case config.AuthModeHTTP:
		return &Services{
			Auth:    NewAuthService(network),
			Home:    NewHomeService(network),
			Profile: NewProfileService(network),
		}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", authCfg.Mode)
	}
}

// NewMockServices returns the offline backend. Every call takes delay and
// issued tokens are signed with signKey.
func NewMockServices(delay time.Duration, signKey string) *Services {
	return &Services{
		Auth:    NewMockAuthService(delay, signKey),
		Home:    NewMockHomeService(delay),
		Profile: NewMockProfileService(delay),
	}
}
