package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/models"
)

const pathUserProfile = "/user/profile"

// validateEditableUser rejects blank first or last names.
func validateEditableUser(user models.EditableUser) error {
	if strings.TrimSpace(user.FirstName) == "" {
		return &ValidationError{Message: "First name cannot be empty"}
	}
	if strings.TrimSpace(user.LastName) == "" {
		return &ValidationError{Message: "Last name cannot be empty"}
	}
	return nil
}

type profileService struct {
	network adapter.NetworkClient
}

// NewProfileService returns a [ProfileService] backed by the server API.
func NewProfileService(network adapter.NetworkClient) ProfileService {
	return &profileService{network: network}
}

func (p *profileService) LoadProfile(ctx context.Context) (models.User, error) {
	req, err := adapter.NewRequestBuilder(p.network.BaseURL()).
		Path(pathUserProfile).
		Method(models.MethodGet).
		AcceptJSON().
		Build()
	if err != nil {
		return models.User{}, err
	}

	return p.do(ctx, req)
}

func (p *profileService) SaveProfile(ctx context.Context, user models.EditableUser) (models.User, error) {
	if err := validateEditableUser(user); err != nil {
		return models.User{}, err
	}

	req, err := adapter.NewRequestBuilder(p.network.BaseURL()).
		Path(pathUserProfile).
		Method(models.MethodPut).
		AcceptJSON().
		JSONBody(user).
		Build()
	if err != nil {
		return models.User{}, err
	}

	return p.do(ctx, req)
}

func (p *profileService) do(ctx context.Context, req models.NetworkRequest) (models.User, error) {
	body, err := p.network.Do(ctx, req)
	if err != nil {
		return models.User{}, err
	}
	return adapter.DecodeJSON[models.User](body)
}

type mockProfileService struct {
	delay time.Duration
	now   func() time.Time
}

// NewMockProfileService returns a [ProfileService] serving a fixed user.
// Loads take half of delay, saves take delay.
func NewMockProfileService(delay time.Duration) ProfileService {
	return &mockProfileService{delay: delay, now: time.Now}
}

func (m *mockProfileService) LoadProfile(ctx context.Context) (models.User, error) {
	if err := sleep(ctx, m.delay/2); err != nil {
		return models.User{}, err
	}

	return m.user(), nil
}

func (m *mockProfileService) SaveProfile(ctx context.Context, user models.EditableUser) (models.User, error) {
	if err := sleep(ctx, m.delay); err != nil {
		return models.User{}, err
	}
	if err := validateEditableUser(user); err != nil {
		return models.User{}, err
	}

	return user.Apply(m.user()), nil
}

func (m *mockProfileService) user() models.User {
	return models.User{
		ID:         "user123",
		Email:      "user@example.com",
		FirstName:  "John",
		LastName:   "Doe",
		Bio:        ptr("Go developer passionate about terminal UIs"),
		JoinedAt:   m.now().AddDate(0, -6, 0),
		IsVerified: true,
	}
}
