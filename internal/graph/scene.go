package graph

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/termviz/internal/frame"
)

// Scene cycles through a list of graphs, one per tick.
type Scene struct {
	renderer Renderer
	graphs   []NamedGraph
	index    int
	started  bool
}

// NewScene creates a scene over graphs drawn with renderer.
func NewScene(graphs []NamedGraph, renderer Renderer) *Scene {
	return &Scene{renderer: renderer, graphs: graphs}
}

// Title names the current graph.
func (s *Scene) Title() string {
	if len(s.graphs) == 0 || !s.started {
		return "Network"
	}
	return fmt.Sprintf("Network · %s (%d/%d)", s.graphs[s.index].Name, s.index+1, len(s.graphs))
}

// Poll returns a step that shows the first graph, then advances one graph per call.
func (s *Scene) Poll(ctx context.Context) (func(), error) {
	return s.Advance, nil
}

// Advance moves to the next graph, wrapping around.
func (s *Scene) Advance() {
	if !s.started {
		s.started = true
		return
	}
	if len(s.graphs) > 0 {
		s.index = (s.index + 1) % len(s.graphs)
	}
}

// Render draws the current graph. Nothing is drawn before the first step.
func (s *Scene) Render() (frame.Frame, error) {
	if !s.started {
		return nil, nil
	}
	if len(s.graphs) == 0 {
		return s.renderer.Render(nil)
	}
	return s.renderer.Render(s.graphs[s.index].Matrix)
}

// Current returns the graph on screen.
func (s *Scene) Current() (NamedGraph, bool) {
	if len(s.graphs) == 0 {
		return NamedGraph{}, false
	}
	return s.graphs[s.index], true
}
