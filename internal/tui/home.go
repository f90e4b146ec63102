package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-app-template/internal/feature/home"
)

const titleWidth = 32

type homeScreen struct {
	cursor    int
	searching bool
	search    textinput.Model
}

func newHomeScreen() homeScreen {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	search.Width = 30
	search.Prompt = "/ "
	return homeScreen{search: search}
}

func (h *homeScreen) clamp(n int) {
	if h.cursor >= n {
		h.cursor = n - 1
	}
	if h.cursor < 0 {
		h.cursor = 0
	}
}

func (m rootModel) updateHome(msg tea.KeyMsg, s home.State) (tea.Model, tea.Cmd) {
	items := s.FilteredItems()

	switch {
	case key.Matches(msg, keys.esc):
		switch {
		case s.Error != nil:
			m.homeView.Send(home.ClearError{})
		case s.SearchText != "":
			m.home.search.SetValue("")
			m.homeView.Send(home.SearchTextChanged{Text: ""})
		}
	case key.Matches(msg, keys.up):
		if m.home.cursor > 0 {
			m.home.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.home.cursor < len(items)-1 {
			m.home.cursor++
		}
	case key.Matches(msg, keys.enter):
		if m.home.cursor < len(items) {
			m.homeView.Send(home.ItemTapped{Item: items[m.home.cursor]})
		}
	case key.Matches(msg, keys.refresh):
		m.homeView.Send(home.Refresh{})
	case key.Matches(msg, keys.search):
		m.home.searching = true
		return m, m.home.search.Focus()
	}

	return m, nil
}

func (m rootModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter, keys.esc) {
		m.home.searching = false
		m.home.search.Blur()
		return m, nil
	}

	before := m.home.search.Value()

	var cmd tea.Cmd
	m.home.search, cmd = m.home.search.Update(msg)

	if after := m.home.search.Value(); after != before {
		m.home.cursor = 0
		m.homeView.Send(home.SearchTextChanged{Text: after})
	}

	return m, cmd
}

func (m rootModel) viewHome(s home.State) string {
	var b strings.Builder

	if m.home.searching || s.SearchText != "" {
		b.WriteString(m.home.search.View())
		b.WriteString("\n\n")
	}

	items := s.FilteredItems()
	switch {
	case s.IsLoading && len(s.Items) == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case len(items) == 0 && s.SearchText != "":
		b.WriteString("No items match your search.")
	case len(items) == 0:
		b.WriteString("No items yet.")
	default:
		for i, item := range items {
			line := fmt.Sprintf("%-*s  %-11s  %s", titleWidth, fitText(item.Title, titleWidth), item.Category, valueOrDash(item.Subtitle))
			if i == m.home.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if s.IsLoading {
			b.WriteString(m.spinner.View())
			b.WriteString(" Refreshing...")
		}
	}

	if s.SelectedItem != nil {
		b.WriteString("\n\nSelected: ")
		b.WriteString(s.SelectedItem.Title)
		if !s.SelectedItem.CreatedAt.IsZero() {
			b.WriteString(" (")
			b.WriteString(s.SelectedItem.CreatedAt.Format("2006-01-02"))
			b.WriteString(")")
		}
	}

	if s.Error != nil {
		b.WriteString("\n\n")
		b.WriteString(errorOverlay(s.Error))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m rootModel) homeHelp() string {
	if m.home.searching {
		return helpLine(with(keys.enter, "done"), with(keys.esc, "done"), keys.quit)
	}
	return helpLine(keys.up, keys.down, with(keys.enter, "open"), keys.search, keys.refresh, with(keys.tab, "profile"), keys.logout, keys.quit)
}
