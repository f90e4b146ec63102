package service

import (
	"context"

	"github.com/MKhiriev/go-app-template/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService performs the two-step sign-in.
//
// Both methods return an *AuthError on failure. Implementations must honor
// ctx: the feature reducers cancel it when the user navigates away.
type AuthService interface {
	// Login checks the credentials. When the response requires a second
	// factor, its Token is a continuation token for Verify.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Verify exchanges a continuation token and a one-time code for the
	// session token.
	Verify(ctx context.Context, token, code string) (models.AuthResponse, error)
}

// HomeService loads the home feed.
type HomeService interface {
	LoadItems(ctx context.Context) ([]models.HomeItem, error)
}

// ProfileService reads and updates the signed-in user's profile.
type ProfileService interface {
	LoadProfile(ctx context.Context) (models.User, error)

	// SaveProfile validates user and stores it. Blank names are rejected
	// with a *ValidationError before anything is sent.
	SaveProfile(ctx context.Context, user models.EditableUser) (models.User, error)
}
