package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/termviz/internal/frame"
)

// MergeColumns lays blocks out side by side, top-aligned, with gap spaces
// between them. The result is as tall as the tallest block; shorter columns
// are filled with blanks of their own width.
func MergeColumns(blocks [][]string, gap int) frame.Frame {
	height := 0
	for _, block := range blocks {
		height = max(height, len(block))
	}
	if height == 0 {
		return frame.Frame{}
	}

	var spacer string
	if gap > 0 {
		spacer = strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", gap)+"\n", height), "\n")
	}

	columns := make([]string, 0, 2*len(blocks))
	for i, block := range blocks {
		if i > 0 && spacer != "" {
			columns = append(columns, spacer)
		}
		columns = append(columns, strings.Join(block, "\n"))
	}

	// JoinHorizontal returns a lone column untouched, so pad it here.
	return frame.Frame(strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, columns...), "\n")).Pad()
}

// RenderDashboard renders every entity as a block and merges the blocks into
// one frame, left to right in input order. No entities yields an empty frame.
func RenderDashboard(views []EntityView, layout Layout) frame.Frame {
	blocks := make([][]string, len(views))
	for i, v := range views {
		blocks[i] = RenderBlock(v, layout)
	}
	return MergeColumns(blocks, layout.Gap)
}
