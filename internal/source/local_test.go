package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMbps(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur uint64
		elapsed   time.Duration
		want      float64
	}{
		{"one megabit per second", 0, 125_000, time.Second, 1},
		{"over two seconds", 1_000, 251_000, 2 * time.Second, 1},
		{"idle", 500, 500, time.Second, 0},
		{"counter reset", 10_000, 10, time.Second, 0},
		{"zero interval", 0, 1_000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mbps(tt.prev, tt.cur, tt.elapsed), 1e-9)
		})
	}
}
