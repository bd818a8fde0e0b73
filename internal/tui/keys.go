package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the board.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextStrategy key.Binding
	Smart        key.Binding
	Fastest      key.Binding
	Impact       key.Binding
	Deadline     key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextStrategy: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next strategy"),
		),
		Smart: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "smart_balance"),
		),
		Fastest: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "fastest_wins"),
		),
		Impact: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "high_impact"),
		),
		Deadline: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "deadline_driven"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
