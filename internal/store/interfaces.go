package store

import (
	"context"

	"github.com/MKhiriev/go-app-template/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository keeps the signed-in session between runs of the client.
// At most one session is stored at a time.
type SessionRepository interface {
	// Save replaces the stored session with s.
	Save(ctx context.Context, s models.Session) error
	// Load returns the stored session or ErrSessionNotFound.
	Load(ctx context.Context) (models.Session, error)
	// Delete removes the stored session. Deleting when nothing is stored is
	// not an error.
	Delete(ctx context.Context) error
}
