package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/models"
)

const (
	pathLogin     = "/auth/login"
	pathTwoFactor = "/auth/two-factor"
)

type authService struct {
	network adapter.NetworkClient
}

// NewAuthService returns an [AuthService] backed by the server API.
func NewAuthService(network adapter.NetworkClient) AuthService {
	return &authService{network: network}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	body := models.LoginRequest{Email: email, Password: password}
	return a.post(ctx, pathLogin, body, ErrInvalidCredentials)
}

func (a *authService) Verify(ctx context.Context, token, code string) (models.AuthResponse, error) {
	body := models.TwoFactorRequest{Token: token, Code: code}
	return a.post(ctx, pathTwoFactor, body, ErrInvalidTwoFactorCode)
}

// post sends body and decodes the auth response. A 401 is reported as
// rejected.
func (a *authService) post(ctx context.Context, path string, body any, rejected *AuthError) (models.AuthResponse, error) {
	req, err := adapter.NewRequestBuilder(a.network.BaseURL()).
		Path(path).
		Method(models.MethodPost).
		AcceptJSON().
		JSONBody(body).
		Build()
	if err != nil {
		return models.AuthResponse{}, AsAuthError(err)
	}

	respBody, err := a.network.Do(ctx, req)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.AuthResponse{}, &AuthError{Kind: rejected.Kind}
		}
		return models.AuthResponse{}, AsAuthError(err)
	}

	resp, err := adapter.DecodeJSON[models.AuthResponse](respBody)
	if err != nil {
		return models.AuthResponse{}, AsAuthError(err)
	}
	if resp.Token == "" {
		return models.AuthResponse{}, NewNetworkAuthError("response carries no token")
	}

	return resp, nil
}
