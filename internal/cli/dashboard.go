package cli

import (
	"context"

	"github.com/rileyhilliard/termviz/internal/config"
	"github.com/rileyhilliard/termviz/internal/display"
	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/rileyhilliard/termviz/internal/ingest"
	"github.com/rileyhilliard/termviz/internal/monitor"
	"github.com/rileyhilliard/termviz/internal/source"
	"github.com/spf13/cobra"
)

// feedSize bounds how many received batches may wait for the display loop.
const feedSize = 16

type dashboardFlags struct {
	View     ViewFlags
	Source   string
	Entities int
	Seed     uint64
	Listen   string
	History  int
}

func newDashboardCmd(global *globalFlags) *cobra.Command {
	flags := &dashboardFlags{}
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"metrics"},
		Short:   "Show per-system CPU, RAM and network sparklines",
		Long: `Show one block per system with CPU, RAM and upload/download rates.
The upload and download lines end in a sparkline of recent readings.

Sources:
  random  synthetic systems (default)
  local   this machine
  http    batches POSTed to /data on --listen

Examples:
  termviz dashboard
  termviz dashboard --source local
  termviz dashboard --source http --listen 0.0.0.0:3000
  curl -d '{"server_data":[{"cpu":12,"ram":3.5,"netspeed":[1.2,8]}]}' localhost:3000/data`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, global, flags)
		},
	}

	AddViewFlags(cmd, &flags.View)
	cmd.Flags().StringVar(&flags.Source, "source", "", "sample source: random, local or http")
	cmd.Flags().IntVar(&flags.Entities, "entities", 0, "number of synthetic systems (random source)")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", 0, "seed for the random source (0 = from clock)")
	cmd.Flags().StringVar(&flags.Listen, "listen", "", "address for the ingestion server (http source)")
	cmd.Flags().IntVar(&flags.History, "history", 0, "readings kept per sparkline")
	return cmd
}

func runDashboard(cmd *cobra.Command, global *globalFlags, flags *dashboardFlags) error {
	cfg, err := loadConfig(global, func(c *config.Config) {
		fs := cmd.Flags()
		if fs.Changed("source") {
			c.Dashboard.Source = flags.Source
		}
		if fs.Changed("entities") {
			c.Dashboard.Entities = flags.Entities
		}
		if fs.Changed("seed") {
			c.Dashboard.Seed = flags.Seed
		}
		if fs.Changed("listen") {
			c.Listen.Addr = flags.Listen
		}
		if fs.Changed("history") {
			c.Dashboard.History = flags.History
		}
	})
	if err != nil {
		return err
	}

	interval, err := ParseInterval(flags.View.Interval, cfg.Dashboard.Interval)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(global, isFullScreen(cmd, flags.View))
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(contextOf(cmd))
	defer cancel()

	layout := monitor.Layout{
		BlockWidth: cfg.Dashboard.ColumnWidth,
		MinHeight:  cfg.Dashboard.MinHeight,
		Gap:        cfg.Dashboard.Gap,
	}

	var src monitor.Source
	switch cfg.Dashboard.Source {
	case config.SourceRandom:
		src = source.NewRandom(cfg.Dashboard.Entities, cfg.Dashboard.Seed)
	case config.SourceLocal:
		src = source.NewLocal(ctx)
	}

	scene := monitor.NewScene(src, cfg.Dashboard.History, layout)
	run := viewRun{scene: scene, interval: interval, view: flags.View}

	if cfg.Dashboard.Source != config.SourceHTTP {
		return runView(ctx, cmd, run)
	}

	run.feed = display.NewFeed(feedSize)
	server := ingest.NewServer(ingest.Options{
		Addr:        cfg.Listen.Addr,
		Rate:        cfg.Listen.Rate,
		Burst:       cfg.Listen.Burst,
		MaxEntities: cfg.Listen.MaxEntities,
	}, func(b monitor.Batch) {
		if err := run.feed.Push(ctx, func() { scene.Ingest(b) }); err != nil {
			log.Debug("dropped batch %s: %v", b.ID, err)
		}
	})
	scene.SetTitle("Metrics Dashboard · POST http://" + server.Addr() + "/data")

	serverErr := make(chan error, 1)
	go func() {
		err := server.Start(ctx)
		if err != nil {
			cancel()
		}
		serverErr <- err
	}()

	viewErr := runView(ctx, cmd, run)
	cancel()
	if err := <-serverErr; err != nil {
		return err
	}
	if viewErr != nil {
		return errors.Wrap(viewErr, "Dashboard stopped")
	}
	return nil
}

// contextOf returns the command's context, or Background outside Execute.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
