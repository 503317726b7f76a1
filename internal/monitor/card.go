package monitor

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/termviz/internal/frame"
)

// Block layout defaults
const (
	DefaultBlockWidth = 30 // nominal column width
	DefaultMinHeight  = 8  // blocks are padded to at least this many lines
	DefaultGap        = 17 // spaces between columns
)

// Layout controls the geometry of dashboard blocks and columns.
type Layout struct {
	BlockWidth int
	MinHeight  int
	Gap        int
}

// DefaultLayout returns the standard block geometry.
func DefaultLayout() Layout {
	return Layout{
		BlockWidth: DefaultBlockWidth,
		MinHeight:  DefaultMinHeight,
		Gap:        DefaultGap,
	}
}

// RenderBlock renders one entity as a fixed-height block of equal-width lines:
// title, divider, CPU and RAM readouts, then upload and download readings with
// their history bars.
func RenderBlock(view EntityView, layout Layout) []string {
	lines := []string{
		frame.Center(view.Title, layout.BlockWidth),
		strings.Repeat("-", layout.BlockWidth),
		fmt.Sprintf("CPU:     %6.1f %%", view.CPU),
		fmt.Sprintf("RAM:     %6.2f GB", view.RAM),
		"NetSpeed:",
		fmt.Sprintf("  Upload:   %6.2f Mbps   %s", view.Upload, Bar(view.UploadHistory)),
		fmt.Sprintf("  Download: %6.2f Mbps   %s", view.Download, Bar(view.DownloadHistory)),
	}

	for len(lines) < layout.MinHeight {
		lines = append(lines, "")
	}

	block := frame.Frame(lines)
	width := block.Width()
	if width < layout.BlockWidth {
		width = layout.BlockWidth
	}
	return block.PadTo(width)
}
