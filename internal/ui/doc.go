// Package ui holds the shared look of termviz: the ANSI color palette, status
// symbols, the waiting spinner and the interactive view menu.
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - healthy values
//	ColorError     (red)    - failures
//	ColorWarning   (yellow) - paused or degraded
//	ColorInfo      (cyan)   - view titles
//	ColorMuted     (gray)   - secondary text, timestamps
//	ColorSecondary (blue)   - spinner
//
// Call ConfigureColors once at startup; it honors --no-color and NO_COLOR.
// ForceColors backs output.color: always.
package ui
