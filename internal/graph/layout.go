package graph

import (
	"math"

	"github.com/rileyhilliard/termviz/internal/errors"
)

// Margin is the number of cells kept between the circle and the canvas edge.
const Margin = 2

// Radius returns the layout circle radius for a width x height canvas.
// A canvas too small to keep the margin is reported as ErrViewport.
func Radius(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.NewViewportTooSmall(width, height)
	}
	r := min(width, height)/2 - Margin
	if r < 0 {
		return 0, errors.NewViewportTooSmall(width, height)
	}
	return r, nil
}

// CircleLayout places n nodes evenly on a circle centred in the canvas,
// starting at angle zero (right of centre) and moving clockwise on screen.
// Positions are not clamped; the canvas drops anything off-grid.
func CircleLayout(n, width, height int) ([]Point, error) {
	r, err := Radius(width, height)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	radius := float64(r)

	positions := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		positions[i] = Point{
			X: int(math.Round(cx + radius*math.Cos(theta))),
			Y: int(math.Round(cy + radius*math.Sin(theta))),
		}
	}
	return positions, nil
}
