package app

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-app-template/internal/feature/home"
	"github.com/MKhiriev/go-app-template/internal/feature/login"
	"github.com/MKhiriev/go-app-template/internal/feature/maintab"
	"github.com/MKhiriev/go-app-template/internal/feature/twofactor"
	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/mock"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	auth    *mock.MockAuthService
	home    *mock.MockHomeService
	profile *mock.MockProfileService
}

func newTestDeps(t *testing.T) (Dependencies, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testDeps{
		auth:    mock.NewMockAuthService(ctrl),
		home:    mock.NewMockHomeService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
	}
	return Dependencies{Auth: m.auth, Home: m.home, Profile: m.profile}, m
}

func asLogin(a login.Action) Action {
	return LoginAction{Action: a}
}

func TestNewStateAndRestore(t *testing.T) {
	assert.Equal(t, Login{}, NewState())

	session := models.Session{Token: "t", Email: "a@b.c"}
	restored, ok := Restore(session).(Main)
	require.True(t, ok)
	assert.Equal(t, session, restored.State.Session)
}

func TestSessionOf(t *testing.T) {
	session := models.Session{Token: "t", Email: "a@b.c"}

	assert.Equal(t, session, SessionOf(Restore(session)))
	assert.True(t, SessionOf(NewState()).IsZero())
	assert.True(t, SessionOf(nil).IsZero())
}

func TestRouter_LoginSuccessSwitchesToMain(t *testing.T) {
	deps, _ := newTestDeps(t)
	reducer := New(deps)

	start := Login{State: login.State{Email: "a@b.com", Password: "x", IsRequestInFlight: true}}
	next, eff := reducer(start, asLogin(login.LoginResponse{Response: models.AuthResponse{Token: "session"}}))

	m, ok := next.(Main)
	require.True(t, ok)
	assert.Equal(t, models.Session{Token: "session", Email: "a@b.com"}, m.State.Session)
	assert.Equal(t, maintab.TabHome, m.State.SelectedTab)
	assert.Equal(t, []flow.CancelID{LoginScope}, eff.CancelIDs())
}

func TestRouter_TwoFactorRequiredStaysInLogin(t *testing.T) {
	deps, _ := newTestDeps(t)
	reducer := New(deps)

	next, eff := reducer(Login{State: login.State{Email: "2fa@x.com", Password: "pw", IsRequestInFlight: true}},
		asLogin(login.LoginResponse{Response: models.AuthResponse{Token: "T", TwoFactorRequired: true}}))

	l, ok := next.(Login)
	require.True(t, ok)
	require.NotNil(t, l.State.TwoFactor)
	assert.Equal(t, "T", l.State.TwoFactor.Token)
	assert.True(t, eff.IsNone())
}

func TestRouter_LoginFailureStaysInLogin(t *testing.T) {
	deps, _ := newTestDeps(t)
	reducer := New(deps)

	next, _ := reducer(Login{State: login.State{Email: "a@b.com", Password: "x", IsRequestInFlight: true}},
		asLogin(login.LoginResponse{Err: &service.AuthError{Kind: service.InvalidCredentials}}))

	l, ok := next.(Login)
	require.True(t, ok)
	assert.ErrorIs(t, l.State.LastError, service.ErrInvalidCredentials)
}

func TestRouter_VerificationSucceededSwitchesToMain(t *testing.T) {
	deps, _ := newTestDeps(t)
	reducer := New(deps)

	start := Login{State: login.State{Email: "2fa@x.com", Password: "pw", TwoFactor: &twofactor.State{Token: "T", Code: "1234"}}}
	next, eff := reducer(start, asLogin(login.TwoFactor{Action: twofactor.VerificationSucceeded{Token: "session"}}))

	m, ok := next.(Main)
	require.True(t, ok)
	assert.Equal(t, "2fa@x.com", m.State.Session.Email)
	assert.Equal(t, "session", m.State.Session.Token)
	assert.Equal(t, []flow.CancelID{LoginScope}, eff.CancelIDs())
}

func TestRouter_LogoutSwitchesToLogin(t *testing.T) {
	deps, _ := newTestDeps(t)
	reducer := New(deps)

	next, eff := reducer(Restore(models.Session{Token: "t"}), MainAction{Action: maintab.LogoutButtonTapped{}})

	assert.Equal(t, Login{}, next)
	assert.Equal(t, []flow.CancelID{MainScope}, eff.CancelIDs())
}

func TestRouter_IgnoresActionsForInactiveVariant(t *testing.T) {
	deps, _ := newTestDeps(t)
	reducer := New(deps)
	signedIn := Restore(models.Session{Token: "t"})

	next, eff := reducer(signedIn, asLogin(login.LoginResponse{Response: models.AuthResponse{Token: "late"}}))
	assert.Equal(t, signedIn, next)
	assert.True(t, eff.IsNone())

	next, eff = reducer(NewState(), MainAction{Action: maintab.LogoutButtonTapped{}})
	assert.Equal(t, NewState(), next)
	assert.True(t, eff.IsNone())
}

func TestChildEffectsAreScoped(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.HomeRefresh = time.Minute
	reducer := New(deps)

	_, eff := reducer(Login{State: login.State{Email: "a@b.com", Password: "x"}}, asLogin(login.LoginButtonTapped{}))
	assert.Equal(t, []flow.CancelID{"login/login"}, eff.RunIDs())

	_, eff = reducer(Restore(models.Session{}), MainAction{Action: maintab.HomeAction{Action: home.OnAppear{}}})
	assert.Equal(t, []flow.CancelID{"main/home.refresh"}, eff.RunIDs())
}
