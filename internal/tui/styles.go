package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("6")
	ColorAccent  = lipgloss.Color("3")
	ColorMuted   = lipgloss.Color("8")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(ColorPrimary)

	installedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	upgradeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))
)
