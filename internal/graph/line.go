package graph

// EdgeGlyph marks cells visited by an edge.
const EdgeGlyph = '*'

// DrawLine rasterizes a straight line from one cell to another with
// Bresenham's error-accumulation walk. It works for every octant, visits both
// endpoints, and skips cells that fall outside the canvas.
func DrawLine(c *Canvas, from, to Point, glyph rune) {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx := 1
	if from.X > to.X {
		sx = -1
	}
	sy := 1
	if from.Y > to.Y {
		sy = -1
	}
	err := dx + dy

	x, y := from.X, from.Y
	for {
		c.Set(Point{X: x, Y: y}, glyph)
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
