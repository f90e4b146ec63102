// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-app-template/internal/feature/login"
	"github.com/MKhiriev/go-app-template/internal/feature/twofactor"
)

const (
	emailField = iota
	passwordField
)

// loginScreen holds the widgets of the sign-in form. The values live in
// login.State; the inputs only echo what was typed.
type loginScreen struct {
	inputs []textinput.Model
	focus  int
}

func newLoginScreen() loginScreen {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginScreen{inputs: []textinput.Model{emailInput, passwordInput}}
}

func (m rootModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.loginView.Send(login.LoginButtonTapped{})
			return m, nil
		}
	}

	before := m.login.inputs[m.login.focus].Value()

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)

	if after := m.login.inputs[m.login.focus].Value(); after != before {
		switch m.login.focus {
		case emailField:
			m.loginView.Send(login.EmailChanged{Email: strings.TrimSpace(after)})
		case passwordField:
			m.loginView.Send(login.PasswordChanged{Password: after})
		}
	}

	return m, cmd
}

func (m rootModel) viewLogin(s login.State) string {
	var b strings.Builder
	b.WriteString("Email     ")
	b.WriteString(m.login.inputs[emailField].View())
	b.WriteString("\n")
	b.WriteString("Password  ")
	b.WriteString(m.login.inputs[passwordField].View())
	b.WriteString("\n\n")

	switch {
	case s.IsRequestInFlight:
		b.WriteString(m.spinner.View())
		b.WriteString(" Signing in...")
	case s.IsFormValid():
		b.WriteString("[Sign in]")
	default:
		b.WriteString(helpStyle.Render("[Sign in]"))
	}

	if s.LastError != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(s.LastError.Error()))
	}

	return renderPage("SIGN IN", b.String(), helpLine(with(keys.tab, "next field"), with(keys.enter, "sign in"), keys.buildInfo, keys.quit))
}

func (l *loginScreen) focusNext() {
	l.inputs[l.focus].Blur()
	l.focus = (l.focus + 1) % len(l.inputs)
	l.inputs[l.focus].Focus()
}

func (l *loginScreen) focusPrev() {
	l.inputs[l.focus].Blur()
	l.focus = (l.focus - 1 + len(l.inputs)) % len(l.inputs)
	l.inputs[l.focus].Focus()
}

type twoFactorScreen struct {
	code textinput.Model
}

func newTwoFactorScreen() twoFactorScreen {
	code := textinput.New()
	code.Placeholder = "code"
	code.CharLimit = 8
	code.Width = 10
	code.Focus()
	return twoFactorScreen{code: code}
}

func (m rootModel) updateTwoFactor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.twoFactorView.Send(twofactor.SubmitButtonTapped{})
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.twoFactorView.Send(twofactor.CancelButtonTapped{})
			return m, nil
		}
	}

	before := m.twoFactor.code.Value()

	var cmd tea.Cmd
	m.twoFactor.code, cmd = m.twoFactor.code.Update(msg)

	if after := m.twoFactor.code.Value(); after != before {
		m.twoFactorView.Send(twofactor.CodeChanged{Code: strings.TrimSpace(after)})
	}

	return m, cmd
}

func (m rootModel) viewTwoFactor(s twofactor.State) string {
	var b strings.Builder
	b.WriteString("Enter the code from your authenticator app.\n\n")
	b.WriteString("Code  ")
	b.WriteString(m.twoFactor.code.View())
	b.WriteString("\n\n")

	if s.IsRequestInFlight {
		b.WriteString(m.spinner.View())
		b.WriteString(" Verifying...")
	} else {
		b.WriteString("[Verify]")
	}

	if s.LastError != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(s.LastError.Error()))
	}

	return renderPage("TWO-FACTOR AUTHENTICATION", b.String(), helpLine(with(keys.enter, "verify"), with(keys.esc, "back"), keys.quit))
}
