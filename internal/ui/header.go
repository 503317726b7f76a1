package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo is what the view header shows.
type HeaderInfo struct {
	Title  string // view title, e.g. "Metrics Dashboard"
	Status string // right-hand status, already styled by the caller
	Width  int    // divider width; <= 0 uses HeaderWidth
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders "termviz · <title>  <status>" over a divider line.
func RenderHeader(info HeaderInfo) string {
	width := info.Width
	if width <= 0 {
		width = HeaderWidth
	}

	var output strings.Builder
	output.WriteString(TitleStyle.Render("termviz"))
	if info.Title != "" {
		output.WriteString(MutedStyle.Render(" · "))
		output.WriteString(info.Title)
	}
	if info.Status != "" {
		output.WriteString("  ")
		output.WriteString(info.Status)
	}
	output.WriteString("\n")

	output.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("━", width)))
	output.WriteString("\n")

	return output.String()
}
