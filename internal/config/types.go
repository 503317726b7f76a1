package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Dashboard sources
const (
	SourceRandom = "random"
	SourceLocal  = "local"
	SourceHTTP   = "http"
)

// Status board modes
const (
	StatusModeFake = "fake"
	StatusModeHTTP = "http"
)

// Config represents the complete .termviz.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Listen    ListenConfig    `yaml:"listen" mapstructure:"listen"`
	Graph     GraphConfig     `yaml:"graph" mapstructure:"graph"`
	Status    StatusConfig    `yaml:"status" mapstructure:"status"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// DashboardConfig controls the metrics dashboard.
type DashboardConfig struct {
	// History is how many past network readings each sparkline shows.
	History int `yaml:"history" mapstructure:"history"`

	// ColumnWidth is the minimum width of one entity block.
	ColumnWidth int `yaml:"column_width" mapstructure:"column_width"`

	// Gap is the number of spaces between blocks.
	Gap int `yaml:"gap" mapstructure:"gap"`

	// MinHeight pads every block to at least this many lines.
	MinHeight int `yaml:"min_height" mapstructure:"min_height"`

	// Interval between polls in pull mode.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Source of samples: "random", "local" or "http".
	Source string `yaml:"source" mapstructure:"source"`

	// Entities is the number of synthetic systems for the random source.
	Entities int `yaml:"entities" mapstructure:"entities"`

	// Seed makes the random source repeatable. Zero seeds from the clock.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

// ListenConfig controls the ingestion server used by the "http" source.
type ListenConfig struct {
	Addr        string  `yaml:"addr" mapstructure:"addr"`
	Rate        float64 `yaml:"rate" mapstructure:"rate"`
	Burst       int     `yaml:"burst" mapstructure:"burst"`
	MaxEntities int     `yaml:"max_entities" mapstructure:"max_entities"`
}

// GraphConfig controls the network graph view.
type GraphConfig struct {
	Width    int           `yaml:"width" mapstructure:"width"`
	Height   int           `yaml:"height" mapstructure:"height"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// File holds graphs to cycle through; empty uses the built-in samples.
	File string `yaml:"file" mapstructure:"file"`
}

// StatusConfig controls the API status board.
type StatusConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Mode is "fake" (scripted demo data) or "http" (real requests).
	Mode    string        `yaml:"mode" mapstructure:"mode"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Endpoints to probe; empty uses the demo endpoints.
	Endpoints []string `yaml:"endpoints" mapstructure:"endpoints"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Dashboard: DashboardConfig{
			History:     10,
			ColumnWidth: 30,
			Gap:         17,
			MinHeight:   8,
			Interval:    time.Second,
			Source:      SourceRandom,
			Entities:    3,
		},
		Listen: ListenConfig{
			Addr:        "127.0.0.1:3000",
			Rate:        20,
			Burst:       40,
			MaxEntities: 64,
		},
		Graph: GraphConfig{
			Width:    40,
			Height:   20,
			Interval: 60 * time.Second,
		},
		Status: StatusConfig{
			Interval: 2 * time.Second,
			Mode:     StatusModeFake,
			Timeout:  5 * time.Second,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
