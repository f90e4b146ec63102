package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-app-template/internal/feature/app"
	"github.com/MKhiriev/go-app-template/internal/feature/home"
	"github.com/MKhiriev/go-app-template/internal/feature/login"
	"github.com/MKhiriev/go-app-template/internal/feature/maintab"
	"github.com/MKhiriev/go-app-template/internal/feature/profile"
	"github.com/MKhiriev/go-app-template/internal/feature/twofactor"
	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/models"
)

// rootModel picks the screen for the current case of app.State. Each
// screen talks to the store through its own view.
type rootModel struct {
	ctx     context.Context
	source  flow.Source[app.State, app.Action]
	changes <-chan struct{}

	loginView     *flow.View[login.State, login.Action]
	twoFactorView *flow.View[twofactor.State, twofactor.Action]
	mainView      *flow.View[maintab.State, maintab.Action]
	homeView      *flow.View[home.State, home.Action]
	profileView   *flow.View[profile.State, profile.Action]

	state     app.State
	login     loginScreen
	twoFactor twoFactorScreen
	home      homeScreen
	profile   profileScreen
	spinner   spinner.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func newRootModel(ctx context.Context, source flow.Source[app.State, app.Action], changes <-chan struct{}, buildInfo models.AppBuildInfo) rootModel {
	loginView := flow.ScopeView(source,
		func(s app.State) (login.State, bool) {
			l, ok := s.(app.Login)
			return l.State, ok
		},
		func(a login.Action) app.Action { return app.LoginAction{Action: a} },
	)
	mainView := flow.ScopeView(source,
		func(s app.State) (maintab.State, bool) {
			m, ok := s.(app.Main)
			return m.State, ok
		},
		func(a maintab.Action) app.Action { return app.MainAction{Action: a} },
	)

	m := rootModel{
		ctx:       ctx,
		source:    source,
		changes:   changes,
		loginView: loginView,
		twoFactorView: flow.ScopeView(loginView,
			func(s login.State) (twofactor.State, bool) {
				if s.TwoFactor == nil {
					return twofactor.State{}, false
				}
				return *s.TwoFactor, true
			},
			func(a twofactor.Action) login.Action { return login.TwoFactor{Action: a} },
		),
		mainView: mainView,
		homeView: flow.ScopeView(mainView,
			flow.Fixed(func(s maintab.State) home.State { return s.Home }),
			func(a home.Action) maintab.Action { return maintab.HomeAction{Action: a} },
		),
		profileView: flow.ScopeView(mainView,
			flow.Fixed(func(s maintab.State) profile.State { return s.Profile }),
			func(a profile.Action) maintab.Action { return maintab.ProfileAction{Action: a} },
		),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		buildInfo: buildInfo,
	}

	return m.sync()
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.ctx, m.changes), m.spinner.Tick, textinput.Blink)
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m = m.sync()
		return m, waitForChange(m.ctx, m.changes)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		case m.showBuildInfo:
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	}

	switch s := m.state.(type) {
	case app.Login:
		if s.State.TwoFactor != nil {
			return m.updateTwoFactor(msg)
		}
		return m.updateLogin(msg)
	case app.Main:
		return m.updateMain(msg, s.State)
	}

	return m, nil
}

func (m rootModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch s := m.state.(type) {
	case app.Login:
		if s.State.TwoFactor != nil {
			body = m.viewTwoFactor(*s.State.TwoFactor)
		} else {
			body = m.viewLogin(s.State)
		}
	case app.Main:
		body = m.viewMain(s.State)
	}

	return appStyle.Render(body)
}

// sync pulls the latest state and resets the input widgets of screens that
// were just entered.
func (m rootModel) sync() rootModel {
	prev := m.state
	m.state, _ = m.source.Snapshot()

	switch s := m.state.(type) {
	case app.Login:
		was, wasLogin := prev.(app.Login)
		if !wasLogin {
			m.login = newLoginScreen()
		}
		if s.State.TwoFactor != nil && (!wasLogin || was.State.TwoFactor == nil) {
			m.twoFactor = newTwoFactorScreen()
		}

	case app.Main:
		was, wasMain := prev.(app.Main)
		if !wasMain {
			m.home = newHomeScreen()
			m.profile = newProfileScreen()
			m.homeView.Send(home.OnAppear{})
		}
		if draft := s.State.Profile.EditableUser; draft != nil && (!wasMain || was.State.Profile.EditableUser == nil) {
			m.profile.startEditing(*draft)
		}
		m.home.clamp(len(s.State.Home.FilteredItems()))
	}

	return m
}
