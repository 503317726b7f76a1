package monitor

import "time"

// Sample is one observation for one monitored entity at one tick.
type Sample struct {
	Name     string  // optional display title; empty falls back to "System N"
	CPU      float64 // percent
	RAM      float64 // GB in use
	Upload   float64 // Mbps
	Download float64 // Mbps
}

// Batch is the complete set of samples for one tick, in display order.
// Producers hand over whole batches; the dashboard never sees a partial one.
type Batch struct {
	ID       string
	Received time.Time
	Samples  []Sample
}

// EntityView is the per-entity snapshot handed to the renderer.
// It is assembled fresh every tick and never stored.
type EntityView struct {
	Title           string
	CPU             float64
	RAM             float64
	Upload          float64
	Download        float64
	UploadHistory   []float64
	DownloadHistory []float64
}
