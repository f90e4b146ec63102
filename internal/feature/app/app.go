// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the root of the client: it shows either the
// sign-in flow or the signed-in screen and switches between them.
package app

import (
	"time"

	"github.com/MKhiriev/go-app-template/internal/feature/login"
	"github.com/MKhiriev/go-app-template/internal/feature/maintab"
	"github.com/MKhiriev/go-app-template/internal/feature/twofactor"
	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/models"
)

// Scopes holding the effects of each variant.
const (
	LoginScope flow.CancelID = "login"
	MainScope  flow.CancelID = "main"
)

// State is either Login or Main.
type State interface {
	isAppState()
}

type (
	Login struct {
		State login.State
	}

	Main struct {
		State maintab.State
	}
)

func (Login) isAppState() {}
func (Main) isAppState()  {}

// NewState returns the state of a signed-out client.
func NewState() State {
	return Login{}
}

// Restore returns the signed-in state for a session kept from an earlier
// run.
func Restore(session models.Session) State {
	return Main{State: maintab.NewState(session)}
}

// SessionOf returns the session held by a signed-in state and the zero
// session otherwise.
func SessionOf(s State) models.Session {
	if m, ok := s.(Main); ok {
		return m.State.Session
	}
	return models.Session{}
}

type Action interface {
	isAppAction()
}

type (
	LoginAction struct {
		Action login.Action
	}

	MainAction struct {
		Action maintab.Action
	}
)

func (LoginAction) isAppAction() {}
func (MainAction) isAppAction()  {}

// Dependencies are the capabilities handed to the feature reducers.
type Dependencies struct {
	Auth    service.AuthService
	Home    service.HomeService
	Profile service.ProfileService
	// HomeRefresh is the home feed auto-refresh period. Zero disables it.
	HomeRefresh time.Duration
}

var (
	loginState = flow.Prism[State, login.State]{
		Extract: func(s State) (login.State, bool) {
			l, ok := s.(Login)
			return l.State, ok
		},
		Embed: func(l login.State) State { return Login{State: l} },
	}
	loginAction = flow.Prism[Action, login.Action]{
		Extract: func(a Action) (login.Action, bool) {
			w, ok := a.(LoginAction)
			return w.Action, ok
		},
		Embed: func(a login.Action) Action { return LoginAction{Action: a} },
	}
	mainState = flow.Prism[State, maintab.State]{
		Extract: func(s State) (maintab.State, bool) {
			m, ok := s.(Main)
			return m.State, ok
		},
		Embed: func(m maintab.State) State { return Main{State: m} },
	}
	mainAction = flow.Prism[Action, maintab.Action]{
		Extract: func(a Action) (maintab.Action, bool) {
			w, ok := a.(MainAction)
			return w.Action, ok
		},
		Embed: func(a maintab.Action) Action { return MainAction{Action: a} },
	}
)

// New returns the root reducer.
func New(deps Dependencies) flow.Reducer[State, Action] {
	return flow.IfCaseLet(
		flow.IfCaseLet(router, LoginScope, loginState, loginAction, login.New(deps.Auth)),
		MainScope, mainState, mainAction, maintab.New(deps.Home, deps.Profile, deps.HomeRefresh),
	)
}

// router switches the variant on the two signals bubbled up by the
// children and does nothing else.
func router(s State, action Action) (State, flow.Effect[Action]) {
	switch a := action.(type) {
	case LoginAction:
		l, ok := s.(Login)
		if !ok {
			return s, flow.None[Action]()
		}
		if token, ok := authenticated(a.Action); ok {
			return Main{State: maintab.NewState(service.SessionFromToken(l.State.Email, token))}, flow.None[Action]()
		}

	case MainAction:
		if _, ok := s.(Main); !ok {
			return s, flow.None[Action]()
		}
		if _, ok := a.Action.(maintab.LogoutButtonTapped); ok {
			return NewState(), flow.None[Action]()
		}
	}

	return s, flow.None[Action]()
}

// authenticated reports whether a login action completes the sign-in and
// returns the session token it carries.
func authenticated(action login.Action) (string, bool) {
	switch a := action.(type) {
	case login.LoginResponse:
		if a.Err == nil && !a.Response.TwoFactorRequired {
			return a.Response.Token, true
		}
	case login.TwoFactor:
		if v, ok := a.Action.(twofactor.VerificationSucceeded); ok {
			return v.Token, true
		}
	}
	return "", false
}
