// Package profile implements the account screen: viewing the signed-in
// user, editing the name and bio, and asking for logout.
package profile

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/models"
)

// Cancellation keys of the feature's effects.
const (
	LoadID flow.CancelID = "profile.load"
	SaveID flow.CancelID = "profile.save"
)

const unknownUser = "Unknown User"

type State struct {
	User             *models.User
	IsLoading        bool
	IsSaving         bool
	Error            *Error
	IsEditingProfile bool
	// EditableUser holds the draft while IsEditingProfile is set.
	EditableUser *models.EditableUser
}

// DisplayName returns the user's name, or "Unknown User" before the profile
// is loaded.
func (s State) DisplayName() string {
	if s.User == nil {
		return unknownUser
	}
	return s.User.DisplayName()
}

// Initials returns up to two upper-cased initials of DisplayName.
func (s State) Initials() string {
	var b strings.Builder
	for i, word := range strings.Fields(s.DisplayName()) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

type Action interface {
	isProfileAction()
}

type (
	OnAppear struct{}

	LoadProfile struct{}

	// ProfileLoaded carries a fetched user. An open editor keeps its draft.
	ProfileLoaded struct {
		User models.User
	}

	ProfileLoadFailed struct {
		Err *Error
	}

	// ProfileSaved carries the user returned by a save and closes the editor.
	ProfileSaved struct {
		User models.User
	}

	ProfileSaveFailed struct {
		Err *Error
	}

	EditProfileButtonTapped struct{}

	FirstNameChanged struct {
		Name string
	}

	LastNameChanged struct {
		Name string
	}

	BioChanged struct {
		Bio string
	}

	SaveProfileButtonTapped struct{}

	CancelEditingButtonTapped struct{}

	// LogoutButtonTapped is handled by the parent.
	LogoutButtonTapped struct{}

	ClearError struct{}
)

func (OnAppear) isProfileAction()                  {}
func (LoadProfile) isProfileAction()               {}
func (ProfileLoaded) isProfileAction()             {}
func (ProfileLoadFailed) isProfileAction()         {}
func (ProfileSaved) isProfileAction()              {}
func (ProfileSaveFailed) isProfileAction()         {}
func (EditProfileButtonTapped) isProfileAction()   {}
func (FirstNameChanged) isProfileAction()          {}
func (LastNameChanged) isProfileAction()           {}
func (BioChanged) isProfileAction()                {}
func (SaveProfileButtonTapped) isProfileAction()   {}
func (CancelEditingButtonTapped) isProfileAction() {}
func (LogoutButtonTapped) isProfileAction()        {}
func (ClearError) isProfileAction()                {}

// New returns the reducer.
func New(svc service.ProfileService) flow.Reducer[State, Action] {
	return func(s State, action Action) (State, flow.Effect[Action]) {
		switch a := action.(type) {
		case OnAppear:
			if s.User != nil || s.IsLoading {
				return s, flow.None[Action]()
			}
			return s, flow.Send[Action](LoadProfile{})

		case LoadProfile:
			s.IsLoading = true
			s.Error = nil
			return s, flow.Run(LoadID, load(svc))

		case ProfileLoaded:
			user := a.User
			s.User = &user
			s.IsLoading = false
			return s, flow.None[Action]()

		case ProfileLoadFailed:
			s.IsLoading = false
			s.Error = a.Err
			return s, flow.None[Action]()

		case ProfileSaved:
			user := a.User
			s.User = &user
			s.IsSaving = false
			s.IsEditingProfile = false
			s.EditableUser = nil
			return s, flow.None[Action]()

		case ProfileSaveFailed:
			s.IsSaving = false
			s.Error = a.Err
			return s, flow.None[Action]()

		case EditProfileButtonTapped:
			if s.User == nil {
				return s, flow.None[Action]()
			}
			draft := models.NewEditableUser(*s.User)
			s.IsEditingProfile = true
			s.EditableUser = &draft
			return s, flow.None[Action]()

		case FirstNameChanged:
			return s.edit(func(e *models.EditableUser) { e.FirstName = a.Name }), flow.None[Action]()

		case LastNameChanged:
			return s.edit(func(e *models.EditableUser) { e.LastName = a.Name }), flow.None[Action]()

		case BioChanged:
			return s.edit(func(e *models.EditableUser) { e.Bio = a.Bio }), flow.None[Action]()

		case SaveProfileButtonTapped:
			if s.EditableUser == nil || s.IsSaving {
				return s, flow.None[Action]()
			}
			s.IsSaving = true
			s.Error = nil
			return s, flow.Run(SaveID, save(svc, *s.EditableUser))

		case CancelEditingButtonTapped:
			wasSaving := s.IsSaving
			s.IsEditingProfile = false
			s.EditableUser = nil
			if !wasSaving {
				return s, flow.None[Action]()
			}
			s.IsSaving = false
			return s, flow.Cancel[Action](SaveID)

		case ClearError:
			s.Error = nil
			return s, flow.None[Action]()
		}

		return s, flow.None[Action]()
	}
}

// edit applies fn to a copy of the draft so earlier snapshots keep theirs.
func (s State) edit(fn func(*models.EditableUser)) State {
	if s.EditableUser == nil {
		return s
	}
	draft := *s.EditableUser
	fn(&draft)
	s.EditableUser = &draft
	return s
}

func load(svc service.ProfileService) flow.Work[Action] {
	return func(ctx context.Context, send func(Action)) {
		user, err := svc.LoadProfile(ctx)
		if err != nil {
			send(ProfileLoadFailed{Err: loadError(err)})
			return
		}
		send(ProfileLoaded{User: user})
	}
}

func save(svc service.ProfileService, draft models.EditableUser) flow.Work[Action] {
	return func(ctx context.Context, send func(Action)) {
		user, err := svc.SaveProfile(ctx, draft)
		if err != nil {
			send(ProfileSaveFailed{Err: saveError(err)})
			return
		}
		send(ProfileSaved{User: user})
	}
}
