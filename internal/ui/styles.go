package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#F59E0B")
	colorMuted  = lipgloss.Color("#6B7280")
	colorHere   = lipgloss.Color("#8B5CF6")
	colorError  = lipgloss.Color("#EF4444")

	titleStyle = lipgloss.NewStyle().Bold(true)

	pastStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	futureStyle = lipgloss.NewStyle()

	importantStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	otherTagStyle = lipgloss.NewStyle().
			Italic(true)

	hereStyle = lipgloss.NewStyle().
			Foreground(colorHere).
			Bold(true).
			Border(lipgloss.NormalBorder(), true, false).
			BorderForeground(colorHere)

	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
