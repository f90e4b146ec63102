package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-app-template/internal/feature/maintab"
	"github.com/MKhiriev/go-app-template/internal/feature/profile"
)

func (m rootModel) updateMain(msg tea.Msg, s maintab.State) (tea.Model, tea.Cmd) {
	// open text fields take every key
	switch {
	case s.SelectedTab == maintab.TabProfile && s.Profile.IsEditingProfile:
		return m.updateProfileEditor(msg)
	case s.SelectedTab == maintab.TabHome && m.home.searching:
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab, keys.backtab):
		next := maintab.TabProfile
		if s.SelectedTab == maintab.TabProfile {
			next = maintab.TabHome
		}
		m.mainView.Send(maintab.TabSelected{Tab: next})
		if next == maintab.TabProfile {
			m.profileView.Send(profile.OnAppear{})
		}
		return m, nil

	case key.Matches(keyMsg, keys.logout):
		if s.SelectedTab == maintab.TabProfile {
			m.profileView.Send(profile.LogoutButtonTapped{})
		} else {
			m.mainView.Send(maintab.LogoutButtonTapped{})
		}
		return m, nil
	}

	if s.SelectedTab == maintab.TabProfile {
		return m.updateProfile(keyMsg, s.Profile)
	}
	return m.updateHome(keyMsg, s.Home)
}

func (m rootModel) viewMain(s maintab.State) string {
	var b strings.Builder

	for _, tab := range []maintab.Tab{maintab.TabHome, maintab.TabProfile} {
		if tab == s.SelectedTab {
			b.WriteString(activeTabStyle.Render(tab.String()))
		} else {
			b.WriteString(inactiveTabStyle.Render(tab.String()))
		}
	}
	if s.Session.Email != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(s.Session.Email))
	}
	b.WriteString("\n\n")

	var hotKeys string
	switch s.SelectedTab {
	case maintab.TabProfile:
		b.WriteString(m.viewProfile(s.Profile))
		hotKeys = m.profileHelp(s.Profile)
	default:
		b.WriteString(m.viewHome(s.Home))
		hotKeys = m.homeHelp()
	}

	return renderPage(strings.ToUpper(s.SelectedTab.String()), b.String(), hotKeys)
}

func errorOverlay(err error) string {
	return errorOverlayModel{message: err.Error()}.View()
}
