package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors, as ANSI codes so any terminal can show them.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// DisableColors switches every lipgloss style to plain text.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ForceColors enables ANSI colors even when stdout is not a terminal.
func ForceColors() termenv.Profile {
	lipgloss.SetColorProfile(termenv.ANSI)
	return termenv.ANSI
}

// ConfigureColors applies --no-color, output.color and the NO_COLOR
// convention. It returns the profile in effect.
func ConfigureColors(noColor bool) termenv.Profile {
	if noColor || os.Getenv("NO_COLOR") != "" {
		DisableColors()
		return termenv.Ascii
	}
	profile := termenv.NewOutput(os.Stdout).EnvColorProfile()
	lipgloss.SetColorProfile(profile)
	return profile
}
