package config

import (
	"fmt"
	"net"
	"net/url"

	"github.com/rileyhilliard/termviz/internal/errors"
)

// minGraphSide is the smallest canvas side that still fits the layout margin.
const minGraphSide = 4

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but termviz only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade termviz or lower 'version' in "+ConfigFileName+".")
	}

	sections := []struct {
		name  string
		check func() error
	}{
		{"dashboard", func() error { return validateDashboard(cfg.Dashboard) }},
		{"listen", func() error { return validateListen(cfg.Listen) }},
		{"graph", func() error { return validateGraph(cfg.Graph) }},
		{"status", func() error { return validateStatus(cfg.Status) }},
		{"output", func() error { return validateOutput(cfg.Output) }},
	}
	for _, s := range sections {
		if err := s.check(); err != nil {
			if errors.IsCode(err, errors.ErrViewport) {
				return err
			}
			return errors.New(errors.ErrConfig, err.Error(),
				fmt.Sprintf("Check the '%s' section in your %s.", s.name, ConfigFileName))
		}
	}

	return nil
}

func validateDashboard(d DashboardConfig) error {
	if d.History < 1 {
		return fmt.Errorf("dashboard.history must be at least 1, got %d", d.History)
	}
	if d.ColumnWidth < 1 {
		return fmt.Errorf("dashboard.column_width must be at least 1, got %d", d.ColumnWidth)
	}
	if d.Gap < 0 {
		return fmt.Errorf("dashboard.gap can't be negative, got %d", d.Gap)
	}
	if d.MinHeight < 0 {
		return fmt.Errorf("dashboard.min_height can't be negative, got %d", d.MinHeight)
	}
	if d.Interval <= 0 {
		return fmt.Errorf("dashboard.interval must be positive, got %s", d.Interval)
	}
	switch d.Source {
	case SourceRandom:
		if d.Entities < 1 {
			return fmt.Errorf("dashboard.entities must be at least 1 for the random source, got %d", d.Entities)
		}
	case SourceLocal, SourceHTTP:
	default:
		return fmt.Errorf("dashboard.source '%s' isn't valid - use %s, %s or %s", d.Source, SourceRandom, SourceLocal, SourceHTTP)
	}
	return nil
}

func validateListen(l ListenConfig) error {
	if _, _, err := net.SplitHostPort(l.Addr); err != nil {
		return fmt.Errorf("listen.addr '%s' must be host:port", l.Addr)
	}
	if l.Rate < 0 {
		return fmt.Errorf("listen.rate can't be negative, got %g", l.Rate)
	}
	if l.Rate > 0 && l.Burst < 1 {
		return fmt.Errorf("listen.burst must be at least 1 when rate limiting is on, got %d", l.Burst)
	}
	if l.MaxEntities < 0 {
		return fmt.Errorf("listen.max_entities can't be negative, got %d", l.MaxEntities)
	}
	return nil
}

func validateGraph(g GraphConfig) error {
	if g.Width < minGraphSide || g.Height < minGraphSide {
		return errors.NewViewportTooSmall(g.Width, g.Height)
	}
	if g.Interval <= 0 {
		return fmt.Errorf("graph.interval must be positive, got %s", g.Interval)
	}
	return nil
}

func validateStatus(s StatusConfig) error {
	if s.Interval <= 0 {
		return fmt.Errorf("status.interval must be positive, got %s", s.Interval)
	}
	switch s.Mode {
	case StatusModeFake, StatusModeHTTP:
	default:
		return fmt.Errorf("status.mode '%s' isn't valid - use %s or %s", s.Mode, StatusModeFake, StatusModeHTTP)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("status.timeout must be positive, got %s", s.Timeout)
	}
	for i, ep := range s.Endpoints {
		u, err := url.Parse(ep)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("status.endpoints[%d] '%s' must be an http(s) URL", i, ep)
		}
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	switch o.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output.color '%s' isn't valid - use auto, always or never", o.Color)
	}
}
