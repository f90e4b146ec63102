package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-template/internal/utils"
	"github.com/MKhiriev/go-app-template/models"
)

const (
	mockIssuer        = "mock-auth"
	mockPassword      = "password"
	mockTwoFactorCode = "1234"

	// mockTwoFactorMarker in an email address makes the mock backend ask
	// for the second factor.
	mockTwoFactorMarker = "2fa"

	mockSessionTTL      = 24 * time.Hour
	mockContinuationTTL = 5 * time.Minute
)

type mockAuthService struct {
	delay   time.Duration
	signKey string
}

// NewMockAuthService returns an offline [AuthService]. Any email is accepted
// with the password "password"; emails containing "2fa" require the code
// "1234". Every call takes delay. Issued tokens are HS256 JWTs signed with
// signKey.
func NewMockAuthService(delay time.Duration, signKey string) AuthService {
	return &mockAuthService{delay: delay, signKey: signKey}
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	if err := sleep(ctx, m.delay); err != nil {
		return models.AuthResponse{}, AsAuthError(err)
	}

	if password != mockPassword {
		return models.AuthResponse{}, &AuthError{Kind: InvalidCredentials}
	}

	if strings.Contains(strings.ToLower(email), mockTwoFactorMarker) {
		token, err := utils.GenerateJWTToken(mockIssuer, email, true, mockContinuationTTL, m.signKey)
		if err != nil {
			return models.AuthResponse{}, AsAuthError(err)
		}
		return models.AuthResponse{Token: token, TwoFactorRequired: true}, nil
	}

	return m.session(email)
}

func (m *mockAuthService) Verify(ctx context.Context, token, code string) (models.AuthResponse, error) {
	if err := sleep(ctx, m.delay); err != nil {
		return models.AuthResponse{}, AsAuthError(err)
	}

	claims, err := utils.ValidateAndParseJWTToken(token, m.signKey, mockIssuer)
	if err != nil || !claims.TwoFactorPending || code != mockTwoFactorCode {
		return models.AuthResponse{}, &AuthError{Kind: InvalidTwoFactorCode}
	}

	return m.session(claims.Subject)
}

func (m *mockAuthService) session(email string) (models.AuthResponse, error) {
	token, err := utils.GenerateJWTToken(mockIssuer, email, false, mockSessionTTL, m.signKey)
	if err != nil {
		return models.AuthResponse{}, AsAuthError(err)
	}
	return models.AuthResponse{Token: token}, nil
}

// ParseMockSessionToken checks a session token minted by the mock backend
// and returns the account email it was issued for. Continuation tokens are
// rejected.
func ParseMockSessionToken(token, signKey string) (string, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, signKey, mockIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}
	if claims.TwoFactorPending {
		return "", fmt.Errorf("%w: two-factor step is not finished", ErrInvalidSessionToken)
	}

	return claims.Subject, nil
}
