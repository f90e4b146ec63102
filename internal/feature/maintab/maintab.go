// Package maintab implements the signed-in screen: a home tab and a profile
// tab sharing one session.
package maintab

import (
	"time"

	"github.com/MKhiriev/go-app-template/internal/feature/home"
	"github.com/MKhiriev/go-app-template/internal/feature/profile"
	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/models"
)

// Tab selects the visible tab.
type Tab uint8

const (
	TabHome Tab = iota
	TabProfile
)

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

type State struct {
	SelectedTab Tab
	Home        home.State
	Profile     profile.State
	// Session is the identity the screen was opened with.
	Session models.Session
}

// NewState returns the screen for session with the home tab selected.
func NewState(session models.Session) State {
	return State{SelectedTab: TabHome, Session: session}
}

type Action interface {
	isMainTabAction()
}

type (
	TabSelected struct {
		Tab Tab
	}

	HomeAction struct {
		Action home.Action
	}

	ProfileAction struct {
		Action profile.Action
	}

	// LogoutButtonTapped is handled by the parent.
	LogoutButtonTapped struct{}
)

func (TabSelected) isMainTabAction()        {}
func (HomeAction) isMainTabAction()         {}
func (ProfileAction) isMainTabAction()      {}
func (LogoutButtonTapped) isMainTabAction() {}

var (
	homeState = flow.Lens[State, home.State]{
		Get: func(s State) home.State { return s.Home },
		Set: func(s State, h home.State) State { s.Home = h; return s },
	}
	homeAction = flow.Prism[Action, home.Action]{
		Extract: func(a Action) (home.Action, bool) {
			w, ok := a.(HomeAction)
			return w.Action, ok
		},
		Embed: func(a home.Action) Action { return HomeAction{Action: a} },
	}
	profileState = flow.Lens[State, profile.State]{
		Get: func(s State) profile.State { return s.Profile },
		Set: func(s State, p profile.State) State { s.Profile = p; return s },
	}
	profileAction = flow.Prism[Action, profile.Action]{
		Extract: func(a Action) (profile.Action, bool) {
			w, ok := a.(ProfileAction)
			return w.Action, ok
		},
		Embed: func(a profile.Action) Action { return ProfileAction{Action: a} },
	}
)

// New returns the reducer. homeRefresh is passed to [home.New].
func New(homeSvc service.HomeService, profileSvc service.ProfileService, homeRefresh time.Duration) flow.Reducer[State, Action] {
	return flow.Combine(
		flow.Scope(homeState, homeAction, home.New(homeSvc, homeRefresh)),
		flow.Scope(profileState, profileAction, profile.New(profileSvc)),
		core,
	)
}

func core(s State, action Action) (State, flow.Effect[Action]) {
	switch a := action.(type) {
	case TabSelected:
		s.SelectedTab = a.Tab
		return s, flow.None[Action]()

	case ProfileAction:
		if _, ok := a.Action.(profile.LogoutButtonTapped); ok {
			return s, flow.Send[Action](LogoutButtonTapped{})
		}
	}

	return s, flow.None[Action]()
}
