// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// AuthErrorKind classifies an [AuthError].
type AuthErrorKind uint8

const (
	// InvalidCredentials means the email/password pair was rejected.
	InvalidCredentials AuthErrorKind = iota + 1
	// InvalidTwoFactorCode means the one-time code or its continuation
	// token was rejected.
	InvalidTwoFactorCode
	// Network covers every other failure; Message describes it.
	Network
)

// AuthError is the typed failure of [AuthService] calls.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
}

// Sentinels for errors.Is. Matching is by kind only.
var (
	ErrInvalidCredentials   = &AuthError{Kind: InvalidCredentials}
	ErrInvalidTwoFactorCode = &AuthError{Kind: InvalidTwoFactorCode}
	ErrAuthNetwork          = &AuthError{Kind: Network}
)

// NewNetworkAuthError returns a Network-kind error carrying message.
func NewNetworkAuthError(message string) *AuthError {
	return &AuthError{Kind: Network, Message: message}
}

func (e *AuthError) Error() string {
	switch e.Kind {
	case InvalidCredentials:
		return "Invalid email or password"
	case InvalidTwoFactorCode:
		return "Invalid two-factor code"
	default:
		return fmt.Sprintf("Network error: %s", e.Message)
	}
}

func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Kind == e.Kind
}

// AsAuthError returns err as an *AuthError. Errors of any other type are
// classified as Network with err's message. A nil err yields nil.
func AsAuthError(err error) *AuthError {
	if err == nil {
		return nil
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	return NewNetworkAuthError(err.Error())
}

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError reports profile input rejected before it was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ErrInvalidSessionToken is returned when a bearer token is not a valid
// session token.
var ErrInvalidSessionToken = errors.New("invalid session token")
