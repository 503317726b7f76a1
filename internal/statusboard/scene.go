package statusboard

import (
	"context"
	"sync/atomic"

	"github.com/rileyhilliard/termviz/internal/frame"
)

// Scene polls a list of endpoints and shows their latest status.
type Scene struct {
	endpoints []string
	prober    Prober
	round     atomic.Int64
	results   []Result
}

// NewScene creates a status board over endpoints.
func NewScene(endpoints []string, prober Prober) *Scene {
	return &Scene{endpoints: endpoints, prober: prober}
}

// Title names the scene in the display header.
func (s *Scene) Title() string {
	return "API Dashboard"
}

// Poll probes every endpoint. The returned step publishes the results.
func (s *Scene) Poll(ctx context.Context) (func(), error) {
	round := int(s.round.Add(1) - 1)
	results := ProbeAll(ctx, s.prober, round, s.endpoints)
	return func() { s.results = results }, nil
}

// Render draws the latest results. It returns nil before the first poll lands.
func (s *Scene) Render() (frame.Frame, error) {
	if s.results == nil {
		return nil, nil
	}
	return Render(s.results), nil
}
