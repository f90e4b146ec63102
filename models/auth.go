package models

// LoginRequest is the body of the first sign-in step.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorRequest is the body of the second sign-in step. Token is the
// continuation token returned by the first step.
type TwoFactorRequest struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

// AuthResponse is the outcome of a successful sign-in step.
//
// When TwoFactorRequired is true, Token is a continuation token that must be
// presented together with the one-time code. Otherwise Token is the session
// bearer token.
type AuthResponse struct {
	Token             string `json:"token"`
	TwoFactorRequired bool   `json:"two_factor_required"`
}
