package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	refresh   key.Binding
	search    key.Binding
	edit      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
	refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	buildInfo: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
}

// with returns b showing desc in the help line.
func with(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
