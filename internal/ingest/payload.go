package ingest

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/rileyhilliard/termviz/internal/monitor"
)

// Payload is the body accepted by POST /data.
type Payload struct {
	ServerData []ServerData `json:"server_data"`
}

// ServerData is one entity's reading. NetSpeed is [upload, download] in Mbps.
type ServerData struct {
	Name     string    `json:"name,omitempty"`
	CPU      float64   `json:"cpu"`
	RAM      float64   `json:"ram"`
	NetSpeed []float64 `json:"netspeed"`
}

// Samples validates the payload and converts it into dashboard samples.
// maxEntities <= 0 disables the size check.
func (p Payload) Samples(maxEntities int) ([]monitor.Sample, error) {
	if len(p.ServerData) == 0 {
		return nil, invalid("server_data must contain at least one entry")
	}
	if maxEntities > 0 && len(p.ServerData) > maxEntities {
		return nil, invalid(fmt.Sprintf("server_data has %d entries, at most %d are accepted", len(p.ServerData), maxEntities))
	}

	samples := make([]monitor.Sample, len(p.ServerData))
	for i, d := range p.ServerData {
		if len(d.NetSpeed) != 2 {
			return nil, invalid(fmt.Sprintf("server_data[%d].netspeed must hold exactly 2 values, got %d", i, len(d.NetSpeed)))
		}
		fields := []struct {
			name string
			v    float64
		}{
			{"cpu", d.CPU},
			{"ram", d.RAM},
			{"netspeed[0]", d.NetSpeed[0]},
			{"netspeed[1]", d.NetSpeed[1]},
		}
		for _, f := range fields {
			if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
				return nil, invalid(fmt.Sprintf("server_data[%d].%s must be a finite, non-negative number", i, f.name))
			}
		}
		samples[i] = monitor.Sample{
			Name:     d.Name,
			CPU:      d.CPU,
			RAM:      d.RAM,
			Upload:   d.NetSpeed[0],
			Download: d.NetSpeed[1],
		}
	}
	return samples, nil
}

func invalid(msg string) *errors.Error {
	return errors.New(errors.ErrIngest, msg,
		`Send {"server_data":[{"cpu":12.5,"ram":3.2,"netspeed":[1.5,20]}]}`)
}
