// Package login implements the email and password step of the sign-in flow
// together with the optional two-factor step it presents.
package login

import (
	"context"

	"github.com/MKhiriev/go-app-template/internal/feature/twofactor"
	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/models"
)

const (
	// LoginID is the cancellation key of the login request.
	LoginID flow.CancelID = "login"
	// TwoFactorScope holds the effects of the presented two-factor step.
	TwoFactorScope flow.CancelID = "twoFactor"
)

// State is the sign-in form.
type State struct {
	Email             string
	Password          string
	IsRequestInFlight bool
	// TwoFactor is set while the server waits for a one-time code.
	TwoFactor *twofactor.State
	LastError *service.AuthError
}

// IsFormValid reports whether both fields are filled in.
func (s State) IsFormValid() bool {
	return s.Email != "" && s.Password != ""
}

// Action is one of the variants below.
type Action interface {
	isLoginAction()
}

type (
	EmailChanged struct {
		Email string
	}

	PasswordChanged struct {
		Password string
	}

	LoginButtonTapped struct{}

	// LoginResponse carries the outcome of the login request. Err is nil on
	// success.
	LoginResponse struct {
		Response models.AuthResponse
		Err      *service.AuthError
	}

	// TwoFactor wraps an action of the presented two-factor step.
	TwoFactor struct {
		Action twofactor.Action
	}
)

func (EmailChanged) isLoginAction()      {}
func (PasswordChanged) isLoginAction()   {}
func (LoginButtonTapped) isLoginAction() {}
func (LoginResponse) isLoginAction()     {}
func (TwoFactor) isLoginAction()         {}

var twoFactorState = flow.Optional[State, twofactor.State]{
	Get: func(s State) (twofactor.State, bool) {
		if s.TwoFactor == nil {
			return twofactor.State{}, false
		}
		return *s.TwoFactor, true
	},
	Set: func(s State, child twofactor.State) State {
		s.TwoFactor = &child
		return s
	},
}

var twoFactorAction = flow.Prism[Action, twofactor.Action]{
	Extract: func(a Action) (twofactor.Action, bool) {
		w, ok := a.(TwoFactor)
		return w.Action, ok
	},
	Embed: func(a twofactor.Action) Action {
		return TwoFactor{Action: a}
	},
}

// New returns the login reducer with the two-factor step attached.
//
// A successful login without a second factor and
// TwoFactor{twofactor.VerificationSucceeded} leave the state as is: the
// parent switches to the signed-in screen when it sees them.
func New(auth service.AuthService) flow.Reducer[State, Action] {
	return flow.IfLet(core(auth), TwoFactorScope, twoFactorState, twoFactorAction, twofactor.New(auth))
}

func core(auth service.AuthService) flow.Reducer[State, Action] {
	return func(s State, action Action) (State, flow.Effect[Action]) {
		switch a := action.(type) {
		case EmailChanged:
			s.Email = a.Email
			return s, flow.None[Action]()

		case PasswordChanged:
			s.Password = a.Password
			return s, flow.None[Action]()

		case LoginButtonTapped:
			if !s.IsFormValid() || s.IsRequestInFlight {
				return s, flow.None[Action]()
			}
			s.IsRequestInFlight = true
			s.LastError = nil
			return s, flow.Run(LoginID, login(auth, s.Email, s.Password))

		case LoginResponse:
			s.IsRequestInFlight = false
			if a.Err != nil {
				s.LastError = a.Err
				return s, flow.None[Action]()
			}
			if a.Response.TwoFactorRequired {
				tf := twofactor.NewState(a.Response.Token)
				s.TwoFactor = &tf
			}
			return s, flow.None[Action]()

		case TwoFactor:
			if _, ok := a.Action.(twofactor.CancelButtonTapped); ok {
				s.TwoFactor = nil
			}
			return s, flow.None[Action]()
		}

		return s, flow.None[Action]()
	}
}

func login(auth service.AuthService, email, password string) flow.Work[Action] {
	return func(ctx context.Context, send func(Action)) {
		resp, err := auth.Login(ctx, email, password)
		send(LoginResponse{Response: resp, Err: service.AsAuthError(err)})
	}
}
