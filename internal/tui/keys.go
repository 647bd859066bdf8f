package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Help      key.Binding
	CheckIn   key.Binding
	Refresh   key.Binding
	List      key.Binding
	Calendar  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Up        key.Binding
	Down      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next habit"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev habit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		CheckIn: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "check in"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		List: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "list view"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "calendar view"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "left"),
			key.WithHelp("[/←", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "right"),
			key.WithHelp("]/→", "next month"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}
