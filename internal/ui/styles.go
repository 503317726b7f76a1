package ui

import "github.com/charmbracelet/lipgloss"

// Shared text styles for view chrome.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)
