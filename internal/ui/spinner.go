package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames is the ◐ ◓ ◑ ◒ animation used while a view waits for data.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// NewSpinner returns a bubbles spinner with the termviz frames and color.
func NewSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)
	return sp
}
