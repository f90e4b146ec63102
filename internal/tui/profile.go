package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-app-template/internal/feature/profile"
	"github.com/MKhiriev/go-app-template/models"
)

const (
	firstNameField = iota
	lastNameField
	bioField
)

type profileScreen struct {
	inputs []textinput.Model
	focus  int
}

func newProfileScreen() profileScreen {
	placeholders := []string{"first name", "last name", "bio"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 128
		in.Width = 40
		inputs[i] = in
	}
	inputs[bioField].CharLimit = 512
	return profileScreen{inputs: inputs}
}

// startEditing fills the inputs from a freshly opened draft.
func (p *profileScreen) startEditing(draft models.EditableUser) {
	p.inputs[firstNameField].SetValue(draft.FirstName)
	p.inputs[lastNameField].SetValue(draft.LastName)
	p.inputs[bioField].SetValue(draft.Bio)

	for i := range p.inputs {
		p.inputs[i].Blur()
	}
	p.focus = firstNameField
	p.inputs[p.focus].Focus()
}

func (m rootModel) updateProfile(msg tea.KeyMsg, s profile.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if s.Error != nil {
			m.profileView.Send(profile.ClearError{})
		}
	case key.Matches(msg, keys.edit):
		m.profileView.Send(profile.EditProfileButtonTapped{})
	case key.Matches(msg, keys.refresh):
		m.profileView.Send(profile.LoadProfile{})
	}
	return m, nil
}

func (m rootModel) updateProfileEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.profileView.Send(profile.CancelEditingButtonTapped{})
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.profileView.Send(profile.SaveProfileButtonTapped{})
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.profile.move(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile.move(-1)
			return m, nil
		}
	}

	focused := &m.profile.inputs[m.profile.focus]
	before := focused.Value()

	var cmd tea.Cmd
	*focused, cmd = focused.Update(msg)

	if after := focused.Value(); after != before {
		switch m.profile.focus {
		case firstNameField:
			m.profileView.Send(profile.FirstNameChanged{Name: after})
		case lastNameField:
			m.profileView.Send(profile.LastNameChanged{Name: after})
		case bioField:
			m.profileView.Send(profile.BioChanged{Bio: after})
		}
	}

	return m, cmd
}

func (p *profileScreen) move(step int) {
	p.inputs[p.focus].Blur()
	p.focus = (p.focus + step + len(p.inputs)) % len(p.inputs)
	p.inputs[p.focus].Focus()
}

func (m rootModel) viewProfile(s profile.State) string {
	var b strings.Builder

	b.WriteString(avatarStyle.Render(valueOr(s.Initials(), "?")))
	b.WriteString("  ")
	b.WriteString(titleStyle.Render(s.DisplayName()))
	b.WriteString("\n\n")

	switch {
	case s.IsEditingProfile:
		labels := []string{"First name", "Last name ", "Bio       "}
		for i, in := range m.profile.inputs {
			b.WriteString(labels[i])
			b.WriteString("  ")
			b.WriteString(in.View())
			b.WriteString("\n")
		}
		if s.IsSaving {
			b.WriteString("\n")
			b.WriteString(m.spinner.View())
			b.WriteString(" Saving...")
		}

	case s.User == nil && s.IsLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading profile...")

	case s.User != nil:
		u := s.User
		b.WriteString("Email     ")
		b.WriteString(u.Email)
		if u.IsVerified {
			b.WriteString(" (verified)")
		}
		b.WriteString("\nBio       ")
		b.WriteString(valueOrDash(u.Bio))
		if !u.JoinedAt.IsZero() {
			b.WriteString("\nJoined    ")
			b.WriteString(u.JoinedAt.Format("January 2006"))
		}
		if s.IsLoading {
			b.WriteString("\n\n")
			b.WriteString(m.spinner.View())
			b.WriteString(" Refreshing...")
		}
	}

	if s.Error != nil {
		b.WriteString("\n\n")
		b.WriteString(errorOverlay(s.Error))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m rootModel) profileHelp(s profile.State) string {
	if s.IsEditingProfile {
		return helpLine(with(keys.tab, "next field"), with(keys.enter, "save"), keys.esc, keys.quit)
	}
	return helpLine(keys.edit, keys.refresh, with(keys.tab, "home"), keys.logout, keys.quit)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
