package source

import (
	"context"
	"time"

	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/rileyhilliard/termviz/internal/monitor"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

const bytesPerGB = 1 << 30

// Local samples the machine termviz runs on as a single entity.
type Local struct {
	name      string
	lastSent  uint64
	lastRecv  uint64
	lastTime  time.Time
	haveStats bool
	now       func() time.Time
}

// NewLocal creates a sampler titled with the host name when it can be read.
func NewLocal(ctx context.Context) *Local {
	l := &Local{now: time.Now}
	if info, err := host.InfoWithContext(ctx); err == nil {
		l.name = info.Hostname
	}
	return l
}

// Name returns the entity title used for this machine.
func (l *Local) Name() string {
	return l.name
}

// Next reads CPU, memory and network counters. The first call reports zero
// network throughput because rates need two readings.
func (l *Local) Next(ctx context.Context) (monitor.Batch, error) {
	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return monitor.Batch{}, sourceError(err, "CPU usage")
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return monitor.Batch{}, sourceError(err, "memory usage")
	}
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return monitor.Batch{}, sourceError(err, "network counters")
	}

	sample := monitor.Sample{Name: l.name, RAM: float64(vm.Used) / bytesPerGB}
	if len(pct) > 0 {
		sample.CPU = pct[0]
	}

	now := l.now()
	if len(counters) > 0 {
		sent, recv := counters[0].BytesSent, counters[0].BytesRecv
		if l.haveStats {
			elapsed := now.Sub(l.lastTime)
			sample.Upload = Mbps(l.lastSent, sent, elapsed)
			sample.Download = Mbps(l.lastRecv, recv, elapsed)
		}
		l.lastSent, l.lastRecv, l.lastTime, l.haveStats = sent, recv, now, true
	}

	return monitor.Batch{Received: now, Samples: []monitor.Sample{sample}}, nil
}

// Mbps converts a byte-counter delta over elapsed into megabits per second.
// A counter that went backwards (interface reset) or a non-positive interval
// yields zero.
func Mbps(prev, cur uint64, elapsed time.Duration) float64 {
	if cur < prev || elapsed <= 0 {
		return 0
	}
	bits := float64(cur-prev) * 8
	return bits / elapsed.Seconds() / 1e6
}

func sourceError(err error, what string) error {
	return errors.WrapWithCode(err, errors.ErrSource,
		"Can't read "+what+" from this machine",
		"Use --source random to run with synthetic data")
}
