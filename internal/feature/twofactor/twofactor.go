// Package twofactor implements the one-time code step of the sign-in flow.
//
// The state lives inside login.State while the server waits for a code. The
// reducer verifies the code and reports success with [VerificationSucceeded];
// dismissing the step is left to the parent.
package twofactor

import (
	"context"

	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/models"
)

// VerifyID is the cancellation key of the verify request.
const VerifyID flow.CancelID = "twoFactor"

// State is the code entry form.
type State struct {
	// Token is the continuation token returned by the first sign-in step.
	Token             string
	Code              string
	IsRequestInFlight bool
	LastError         *service.AuthError
}

// NewState returns an empty form for token.
func NewState(token string) State {
	return State{Token: token}
}

// IsFormValid reports whether a code has been entered.
func (s State) IsFormValid() bool {
	return s.Code != ""
}

// Action is one of the variants below.
type Action interface {
	isTwoFactorAction()
}

type (
	CodeChanged struct {
		Code string
	}

	SubmitButtonTapped struct{}

	// VerifyResponse carries the outcome of the verify request. Err is nil
	// on success.
	VerifyResponse struct {
		Response models.AuthResponse
		Err      *service.AuthError
	}

	// VerificationSucceeded is sent after a successful verify. Token is the
	// session token. The parent reacts to it; this reducer does not.
	VerificationSucceeded struct {
		Token string
	}

	// CancelButtonTapped asks the parent to dismiss the step.
	CancelButtonTapped struct{}
)

func (CodeChanged) isTwoFactorAction()           {}
func (SubmitButtonTapped) isTwoFactorAction()    {}
func (VerifyResponse) isTwoFactorAction()        {}
func (VerificationSucceeded) isTwoFactorAction() {}
func (CancelButtonTapped) isTwoFactorAction()    {}

// New returns the reducer. auth is called from the verify effect only.
func New(auth service.AuthService) flow.Reducer[State, Action] {
	return func(s State, action Action) (State, flow.Effect[Action]) {
		switch a := action.(type) {
		case CodeChanged:
			s.Code = a.Code
			return s, flow.None[Action]()

		case SubmitButtonTapped:
			if !s.IsFormValid() || s.IsRequestInFlight {
				return s, flow.None[Action]()
			}
			s.IsRequestInFlight = true
			s.LastError = nil
			return s, flow.Run(VerifyID, verify(auth, s.Token, s.Code))

		case VerifyResponse:
			if a.Err != nil {
				s.IsRequestInFlight = false
				s.LastError = a.Err
				return s, flow.None[Action]()
			}
			// The form stays in flight until the parent dismisses it, so no
			// second submit can start in between.
			return s, flow.Send[Action](VerificationSucceeded{Token: a.Response.Token})
		}

		return s, flow.None[Action]()
	}
}

func verify(auth service.AuthService, token, code string) flow.Work[Action] {
	return func(ctx context.Context, send func(Action)) {
		resp, err := auth.Verify(ctx, token, code)
		send(VerifyResponse{Response: resp, Err: service.AsAuthError(err)})
	}
}
