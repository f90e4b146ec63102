package models

import (
	"strings"
	"time"
)

// User is the profile of the authenticated account as returned by the
// profile endpoint.
type User struct {
	// ID is the server-side identifier of the account.
	ID string `json:"id"`

	// Email is the sign-in address of the account. It is also the
	// fallback display value when no name is set.
	Email string `json:"email"`

	// FirstName and LastName are the editable parts of the profile.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// AvatarURL points to the profile picture, if any.
	AvatarURL *string `json:"avatar_url,omitempty"`

	// Bio is an optional free-form description.
	Bio *string `json:"bio,omitempty"`

	// JoinedAt is the account creation time.
	JoinedAt time.Time `json:"joined_at"`

	// IsVerified reports whether the email address has been confirmed.
	IsVerified bool `json:"is_verified"`
}

// DisplayName returns "First Last" with surrounding blanks removed.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// FullName returns the display name, or the email when no name is set.
func (u User) FullName() string {
	if name := u.DisplayName(); name != "" {
		return name
	}
	return u.Email
}

// EditableUser carries the profile fields the user may change.
type EditableUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// NewEditableUser copies the editable fields of u. A missing bio becomes
// the empty string.
func NewEditableUser(u User) EditableUser {
	e := EditableUser{FirstName: u.FirstName, LastName: u.LastName}
	if u.Bio != nil {
		e.Bio = *u.Bio
	}
	return e
}

// Apply returns u with the edited fields written back. An empty bio clears
// it.
func (e EditableUser) Apply(u User) User {
	u.FirstName = e.FirstName
	u.LastName = e.LastName
	if e.Bio == "" {
		u.Bio = nil
	} else {
		bio := e.Bio
		u.Bio = &bio
	}
	return u
}
