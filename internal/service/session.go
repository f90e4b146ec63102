package service

import (
	"github.com/MKhiriev/go-app-template/internal/utils"
	"github.com/MKhiriev/go-app-template/models"
)

// SessionFromToken builds the session for a freshly issued token. The
// token's claims are read without verification to learn its expiry; tokens
// that are not JWTs yield a session with no expiry. When email is empty the
// token subject is used instead.
func SessionFromToken(email, token string) models.Session {
	session := models.Session{Token: token, Email: email}

	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		return session
	}

	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	if session.Email == "" {
		session.Email = claims.Subject
	}

	return session
}
