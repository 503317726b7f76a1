package monitor

import "fmt"

// DefaultHistorySize is the default number of samples retained per stream.
const DefaultHistorySize = 10

// Buffer is a bounded FIFO window of float64 samples backed by a ring.
// Once full, each Push evicts the oldest sample. Buffer is not safe for
// concurrent use; its owner serializes access.
type Buffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewBuffer creates a buffer holding at most size samples.
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &Buffer{
		data: make([]float64, size),
		size: size,
	}
}

// Push appends a value, evicting the oldest one when the buffer is full.
func (b *Buffer) Push(value float64) {
	b.data[b.head] = value
	b.head = (b.head + 1) % b.size
	if b.count < b.size {
		b.count++
	}
}

// Snapshot returns a copy of the stored values in chronological order (oldest first).
func (b *Buffer) Snapshot() []float64 {
	result := make([]float64, b.count)

	// head points at the next write slot, so the oldest value sits count slots behind it
	start := (b.head - b.count + b.size) % b.size
	for i := 0; i < b.count; i++ {
		result[i] = b.data[(start+i)%b.size]
	}

	return result
}

// Len returns the number of stored samples.
func (b *Buffer) Len() int {
	return b.count
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return b.size
}

// entityHistory holds the upload and download windows for one entity.
type entityHistory struct {
	upload   *Buffer
	download *Buffer
}

// Tracker owns the network histories of every entity shown on the dashboard,
// one pair of buffers per entity index.
type Tracker struct {
	size     int
	entities []*entityHistory
}

// NewTracker creates a tracker whose buffers hold size samples each.
func NewTracker(size int) *Tracker {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &Tracker{size: size}
}

// Observe records a batch and returns the views to render for it.
// Entities missing from this batch keep their history but are not returned.
func (t *Tracker) Observe(batch Batch) []EntityView {
	for i, s := range batch.Samples {
		hist := t.entity(i)
		hist.upload.Push(s.Upload)
		hist.download.Push(s.Download)
	}
	return t.Views(batch)
}

// Views assembles views for the batch from the current buffers without
// recording anything.
func (t *Tracker) Views(batch Batch) []EntityView {
	views := make([]EntityView, 0, len(batch.Samples))
	for i, s := range batch.Samples {
		var up, down []float64
		if i < len(t.entities) {
			up = t.entities[i].upload.Snapshot()
			down = t.entities[i].download.Snapshot()
		}
		views = append(views, EntityView{
			Title:           entityTitle(i, s.Name),
			CPU:             s.CPU,
			RAM:             s.RAM,
			Upload:          s.Upload,
			Download:        s.Download,
			UploadHistory:   up,
			DownloadHistory: down,
		})
	}
	return views
}

// Count returns how many samples are stored for an entity's upload stream.
func (t *Tracker) Count(index int) int {
	if index < 0 || index >= len(t.entities) {
		return 0
	}
	return t.entities[index].upload.Len()
}

// Entities returns the number of entities with history.
func (t *Tracker) Entities() int {
	return len(t.entities)
}

// Reset drops all history.
func (t *Tracker) Reset() {
	t.entities = nil
}

// entity returns the history for index, growing the tracker as needed.
func (t *Tracker) entity(index int) *entityHistory {
	for len(t.entities) <= index {
		t.entities = append(t.entities, &entityHistory{
			upload:   NewBuffer(t.size),
			download: NewBuffer(t.size),
		})
	}
	return t.entities[index]
}

func entityTitle(index int, name string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("System %d", index+1)
}
