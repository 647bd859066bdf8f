package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 3).
			Bold(true)

	pressedButtonStyle = buttonStyle.
				Background(lipgloss.Color("57")).
				Foreground(lipgloss.Color("250"))

	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	activeToggleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Underline(true)

	inactiveToggleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
