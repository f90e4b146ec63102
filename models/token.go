package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of tokens issued during sign-in.
//
// It embeds [jwt.RegisteredClaims] for the standard claims; the subject is
// the account email.
type TokenClaims struct {
	jwt.RegisteredClaims

	// TwoFactorPending marks a continuation token that is only good for the
	// second sign-in step.
	TwoFactorPending bool `json:"2fa_pending,omitempty"`
}
