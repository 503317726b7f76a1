package graph

import (
	"strconv"

	"github.com/rileyhilliard/termviz/internal/frame"
)

// Default canvas size
const (
	DefaultWidth  = 40
	DefaultHeight = 20
)

// EmptyGraphMessage is the single line rendered for a graph with no nodes.
const EmptyGraphMessage = "Empty graph."

// Label markers around node indices.
const (
	LabelOpen  = '('
	LabelClose = ')'
)

// Renderer draws adjacency matrices onto a fixed-size character grid.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer creates a renderer for a width x height canvas.
func NewRenderer(width, height int) Renderer {
	return Renderer{Width: width, Height: height}
}

// Render lays the nodes out on a circle, draws one line per connected pair and
// stamps node labels last so they always sit on top of edges.
//
// Labels are "(index)" with every digit of the index. A label reaching past
// the right edge of the canvas is clipped there.
func (r Renderer) Render(m Matrix) (frame.Frame, error) {
	positions, err := CircleLayout(m.Size(), r.Width, r.Height)
	if err != nil {
		return nil, err
	}
	if m.Size() == 0 {
		return frame.Frame{EmptyGraphMessage}, nil
	}

	canvas := NewCanvas(r.Width, r.Height)

	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Edge(i, j) {
				DrawLine(canvas, positions[i], positions[j], EdgeGlyph)
			}
		}
	}

	for i, p := range positions {
		StampLabel(canvas, p, i)
	}

	return canvas.Frame(), nil
}

// StampLabel writes "(index)" starting at p. Cells off the canvas are dropped.
// It returns false when any part of the label was clipped.
func StampLabel(c *Canvas, p Point, index int) bool {
	label := string(LabelOpen) + strconv.Itoa(index) + string(LabelClose)
	complete := true
	for k, ch := range []rune(label) {
		if !c.Set(Point{X: p.X + k, Y: p.Y}, ch) {
			complete = false
		}
	}
	return complete
}
