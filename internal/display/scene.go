package display

import (
	"context"

	"github.com/rileyhilliard/termviz/internal/frame"
)

// Scene is one view the display loop can drive.
//
// Poll may block (network, sampling) and runs off the display goroutine. It
// must not mutate what Render reads; instead it returns a step, which the
// loop applies on its own goroutine before rendering. A nil step means there
// was nothing to apply.
type Scene interface {
	Title() string
	Poll(ctx context.Context) (func(), error)
	Render() (frame.Frame, error)
}
