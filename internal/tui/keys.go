package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	All      key.Binding
	Date     key.Binding
	Messages key.Binding
	Copy     key.Binding
	Focus    key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("up/C-k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("dn/C-j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle participant"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all/none"),
	),
	Date: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "cycle date"),
	),
	Messages: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle messages"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy report"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "report up"),
	),
	ScrollDn: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "report down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}
