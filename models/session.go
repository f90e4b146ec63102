// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated identity kept while the user is signed in
// and persisted between runs of the client.
type Session struct {
	// Token is the bearer token attached to authenticated requests.
	Token string

	// Email is the address the user signed in with.
	Email string

	// ExpiresAt is the token expiry. The zero value means the token carries
	// no expiry the client could read.
	ExpiresAt time.Time
}

// IsZero reports whether s holds no token.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// Expired reports whether the session has a known expiry that is not after
// now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !s.ExpiresAt.After(now)
}
