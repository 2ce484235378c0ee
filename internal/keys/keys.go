// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the dashboard.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Tab cycling
	NextTab    key.Binding
	PrevTab    key.Binding
	ItemsTab   key.Binding
	TargetsTab key.Binding
	RoutesTab  key.Binding

	// Actions
	CycleCategory key.Binding
	FocusLocation key.Binding
	Submit        key.Binding
	Refresh       key.Binding

	// General
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),

		// Tab cycling
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		ItemsTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "items"),
		),
		TargetsTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "targets"),
		),
		RoutesTab: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "routes"),
		),

		// Actions
		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle category"),
		),
		FocusLocation: key.NewBinding(
			key.WithKeys("/", "enter"),
			key.WithHelp("/", "enter location"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "predict targets"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh routes"),
		),

		// General
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
