package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings for the dashboard.
type keyMap struct {
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
		Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "operations")),
		Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "throughput")),
		Tab4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "trades")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev tab")),
		Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "re-run analysis")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
