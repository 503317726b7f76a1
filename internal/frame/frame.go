// Package frame defines the text frame produced by every termviz renderer:
// an ordered sequence of lines that is rectangular once padded.
package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame is one rendered screen of text lines.
type Frame []string

// Width returns the display width of the widest line.
func (f Frame) Width() int {
	w := 0
	for _, line := range f {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w
}

// Height returns the number of lines.
func (f Frame) Height() int {
	return len(f)
}

// Pad returns a copy where every line is right-padded with spaces to the
// frame's display width.
func (f Frame) Pad() Frame {
	return f.PadTo(f.Width())
}

// PadTo returns a copy where every line is right-padded to at least width cells.
// Lines already wider are left untouched.
func (f Frame) PadTo(width int) Frame {
	out := make(Frame, len(f))
	for i, line := range f {
		out[i] = PadLine(line, width)
	}
	return out
}

// IsRect reports whether all lines share the same display width.
func (f Frame) IsRect() bool {
	if len(f) == 0 {
		return true
	}
	w := lipgloss.Width(f[0])
	for _, line := range f[1:] {
		if lipgloss.Width(line) != w {
			return false
		}
	}
	return true
}

// Equal reports whether two frames hold identical lines.
func (f Frame) Equal(other Frame) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins the lines with newlines.
func (f Frame) String() string {
	return strings.Join(f, "\n")
}

// PadLine right-pads a single line with spaces to width display cells.
func PadLine(line string, width int) string {
	gap := width - lipgloss.Width(line)
	if gap <= 0 {
		return line
	}
	return line + strings.Repeat(" ", gap)
}

// Center places s in the middle of width cells. Odd slack goes to the right.
func Center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
