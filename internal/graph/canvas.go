package graph

import "github.com/rileyhilliard/termviz/internal/frame"

// Blank is the glyph every canvas cell starts with.
const Blank = ' '

// Point is an integer grid coordinate. X is the column, Y the row.
type Point struct {
	X int
	Y int
}

// Canvas is a fixed-size character grid owned by a single render pass.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
}

// NewCanvas creates a blank canvas. Non-positive sizes yield an empty canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = Blank
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether p addresses a cell of the canvas.
func (c *Canvas) InBounds(p Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Set writes r at p. Writes outside the canvas are dropped and reported as false.
func (c *Canvas) Set(p Point, r rune) bool {
	if !c.InBounds(p) {
		return false
	}
	c.cells[p.Y][p.X] = r
	return true
}

// Get returns the glyph at p, or Blank outside the canvas.
func (c *Canvas) Get(p Point) rune {
	if !c.InBounds(p) {
		return Blank
	}
	return c.cells[p.Y][p.X]
}

// Count returns how many cells hold r.
func (c *Canvas) Count(r rune) int {
	n := 0
	for _, row := range c.cells {
		for _, cell := range row {
			if cell == r {
				n++
			}
		}
	}
	return n
}

// Frame flattens the rows into a frame, one line per row.
func (c *Canvas) Frame() frame.Frame {
	out := make(frame.Frame, c.height)
	for y, row := range c.cells {
		out[y] = string(row)
	}
	return out
}
