package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/internal/mock"
	"github.com/MKhiriev/go-app-template/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateEditableUser(t *testing.T) {
	tests := []struct {
		name    string
		user    models.EditableUser
		wantMsg string
	}{
		{name: "valid", user: models.EditableUser{FirstName: "Ada", LastName: "Lovelace"}},
		{name: "blank first name", user: models.EditableUser{FirstName: "  ", LastName: "Lovelace"}, wantMsg: "First name cannot be empty"},
		{name: "blank last name", user: models.EditableUser{FirstName: "Ada"}, wantMsg: "Last name cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEditableUser(tt.user)

			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestProfileService_LoadProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	network := mock.NewMockNetworkClient(ctrl)
	network.EXPECT().BaseURL().Return(testBaseURL)
	network.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.NetworkRequest) ([]byte, error) {
			assert.Equal(t, testBaseURL+"/user/profile", req.URL)
			assert.Equal(t, models.MethodGet, req.Method)
			return []byte(`{"id":"u1","email":"a@b.c","first_name":"Ada","last_name":"Lovelace","joined_at":"2026-01-02T03:04:05Z","is_verified":true}`), nil
		},
	)

	user, err := NewProfileService(network).LoadProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.DisplayName())
	assert.True(t, user.IsVerified)
}

func TestProfileService_SaveProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	network := mock.NewMockNetworkClient(ctrl)
	network.EXPECT().BaseURL().Return(testBaseURL)
	network.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.NetworkRequest) ([]byte, error) {
			assert.Equal(t, models.MethodPut, req.Method)

			var body models.EditableUser
			require.NoError(t, json.Unmarshal(req.Body, &body))
			assert.Equal(t, models.EditableUser{FirstName: "Ada", LastName: "King", Bio: "math"}, body)

			return []byte(`{"id":"u1","first_name":"Ada","last_name":"King","bio":"math"}`), nil
		},
	)

	user, err := NewProfileService(network).SaveProfile(context.Background(), models.EditableUser{FirstName: "Ada", LastName: "King", Bio: "math"})

	require.NoError(t, err)
	assert.Equal(t, "King", user.LastName)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "math", *user.Bio)
}

func TestProfileService_SaveProfile_ValidatesBeforeSending(t *testing.T) {
	ctrl := gomock.NewController(t)
	network := mock.NewMockNetworkClient(ctrl)

	_, err := NewProfileService(network).SaveProfile(context.Background(), models.EditableUser{LastName: "King"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileService_LoadProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	network := mock.NewMockNetworkClient(ctrl)
	network.EXPECT().BaseURL().Return(testBaseURL)
	network.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrNotFound)

	_, err := NewProfileService(network).LoadProfile(context.Background())

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestMockProfileService(t *testing.T) {
	svc := NewMockProfileService(0)
	ctx := context.Background()

	user, err := svc.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.DisplayName())

	updated, err := svc.SaveProfile(ctx, models.EditableUser{FirstName: "Jane", LastName: "Roe"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", updated.DisplayName())
	assert.Nil(t, updated.Bio, "empty bio clears it")

	_, err = svc.SaveProfile(ctx, models.EditableUser{FirstName: "Jane"})
	assert.ErrorIs(t, err, ErrValidation)
}
