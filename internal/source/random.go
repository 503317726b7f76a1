package source

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rileyhilliard/termviz/internal/monitor"
)

// Upper bounds (exclusive) of the synthetic signals.
const (
	MaxCPU      = 100.0
	MaxRAM      = 16.0
	MaxUpload   = 10.0
	MaxDownload = 50.0
)

// Random generates synthetic samples for a fixed number of entities.
type Random struct {
	entities int
	rng      *rand.Rand
	now      func() time.Time
}

// NewRandom creates a generator for entities systems. A zero seed draws one
// from the clock, so runs differ; any other seed makes the output repeatable.
func NewRandom(entities int, seed uint64) *Random {
	if entities < 0 {
		entities = 0
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		entities: entities,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:      time.Now,
	}
}

// Next returns one batch with a fresh sample per entity.
func (r *Random) Next(ctx context.Context) (monitor.Batch, error) {
	if err := ctx.Err(); err != nil {
		return monitor.Batch{}, err
	}
	samples := make([]monitor.Sample, r.entities)
	for i := range samples {
		samples[i] = monitor.Sample{
			CPU:      r.rng.Float64() * MaxCPU,
			RAM:      r.rng.Float64() * MaxRAM,
			Upload:   r.rng.Float64() * MaxUpload,
			Download: r.rng.Float64() * MaxDownload,
		}
	}
	return monitor.Batch{Received: r.now(), Samples: samples}, nil
}
