package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#8a3ffc", Dark: "#be95ff"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#6f6f6f", Dark: "#8d8d8d"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#b28600", Dark: "#f1c21b"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	filterStyle = lipgloss.NewStyle().Foreground(colorMuted)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	rowStyle = lipgloss.NewStyle().PaddingLeft(2)

	metaStyle = lipgloss.NewStyle().Foreground(colorMuted)

	warnStyle = lipgloss.NewStyle().Foreground(colorWarn)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true)
)
