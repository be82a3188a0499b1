package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Cancel   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Interval key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
	Edit:     key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
	Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "[")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "]")),
	Interval: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "row interval")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
