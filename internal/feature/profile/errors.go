package profile

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/internal/service"
)

// ErrorKind classifies a profile failure.
type ErrorKind uint8

const (
	NetworkError ErrorKind = iota + 1
	UpdateFailed
	Unauthorized
	UserNotFound
	ValidationError
)

// Error is the failure shown on the profile screen.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UpdateFailed:
		return fmt.Sprintf("Failed to update profile: %s", e.Message)
	case Unauthorized:
		return "You are not authorized to perform this action"
	case UserNotFound:
		return "User profile not found"
	case ValidationError:
		return fmt.Sprintf("Validation error: %s", e.Message)
	default:
		return fmt.Sprintf("Network error: %s", e.Message)
	}
}

// loadError classifies a failure of ProfileService.LoadProfile.
func loadError(err error) *Error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return &Error{Kind: Unauthorized}
	case errors.Is(err, adapter.ErrNotFound):
		return &Error{Kind: UserNotFound}
	default:
		return &Error{Kind: NetworkError, Message: err.Error()}
	}
}

// saveError classifies a failure of ProfileService.SaveProfile.
func saveError(err error) *Error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return &Error{Kind: ValidationError, Message: validationErr.Message}
	case errors.Is(err, adapter.ErrUnauthorized):
		return &Error{Kind: Unauthorized}
	default:
		return &Error{Kind: UpdateFailed, Message: err.Error()}
	}
}
