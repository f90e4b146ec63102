// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware. Callers can match them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader means the request has no "Authorization"
	// header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not of the form
	// "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the Bearer scheme is present but the token is
	// blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
