package monitor

import (
	"context"

	"github.com/rileyhilliard/termviz/internal/frame"
)

// Source produces one complete batch of samples per call.
type Source interface {
	Next(ctx context.Context) (Batch, error)
}

// Scene drives the metrics dashboard from a pull source or from pushed batches.
// All mutation happens inside the closures returned by Poll or through Ingest,
// which the display loop runs on its own goroutine.
type Scene struct {
	title   string
	source  Source
	tracker *Tracker
	layout  Layout
	last    Batch
	seen    bool
}

// NewScene creates a dashboard scene. A nil source means batches arrive
// through Ingest only.
func NewScene(source Source, historySize int, layout Layout) *Scene {
	return &Scene{
		title:   "Metrics Dashboard",
		source:  source,
		tracker: NewTracker(historySize),
		layout:  layout,
	}
}

// Title names the scene in the display header.
func (s *Scene) Title() string {
	return s.title
}

// SetTitle replaces the header title, e.g. to show where batches come from.
func (s *Scene) SetTitle(title string) {
	s.title = title
}

// Poll pulls the next batch from the source. The returned step records it.
func (s *Scene) Poll(ctx context.Context) (func(), error) {
	if s.source == nil {
		return nil, nil
	}
	batch, err := s.source.Next(ctx)
	if err != nil {
		return nil, err
	}
	return func() { s.Ingest(batch) }, nil
}

// Ingest records a complete batch.
func (s *Scene) Ingest(batch Batch) {
	s.tracker.Observe(batch)
	s.last = batch
	s.seen = true
}

// Render draws the latest batch against the current histories.
// It returns a nil frame until the first batch arrives.
func (s *Scene) Render() (frame.Frame, error) {
	if !s.seen {
		return nil, nil
	}
	return RenderDashboard(s.tracker.Views(s.last), s.layout), nil
}

// Tracker exposes the scene's histories.
func (s *Scene) Tracker() *Tracker {
	return s.tracker
}
