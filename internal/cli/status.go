package cli

import (
	"time"

	"github.com/rileyhilliard/termviz/internal/config"
	"github.com/rileyhilliard/termviz/internal/statusboard"
	"github.com/spf13/cobra"
)

type statusFlags struct {
	View      ViewFlags
	Mode      string
	Endpoints []string
	Timeout   time.Duration
}

func newStatusCmd(global *globalFlags) *cobra.Command {
	flags := &statusFlags{}
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"api"},
		Short:   "Show a live/error board for HTTP endpoints",
		Long: `Show one line per endpoint: ✅ live, ❌ error, ⚠️ degraded.

Modes:
  fake  scripted demo data (default)
  http  real GET requests; 2xx/3xx are live, 5xx and failures are errors

Examples:
  termviz status
  termviz status --mode http --endpoint https://example.com --endpoint https://api.github.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, global, flags)
		},
	}

	AddViewFlags(cmd, &flags.View)
	cmd.Flags().StringVar(&flags.Mode, "mode", "", "fake or http")
	cmd.Flags().StringArrayVar(&flags.Endpoints, "endpoint", nil, "endpoint URL to probe (repeatable)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "per-request timeout in http mode")
	return cmd
}

func runStatus(cmd *cobra.Command, global *globalFlags, flags *statusFlags) error {
	cfg, err := loadConfig(global, func(c *config.Config) {
		fs := cmd.Flags()
		if fs.Changed("mode") {
			c.Status.Mode = flags.Mode
		}
		if fs.Changed("endpoint") {
			c.Status.Endpoints = flags.Endpoints
		}
		if fs.Changed("timeout") {
			c.Status.Timeout = flags.Timeout
		}
	})
	if err != nil {
		return err
	}

	interval, err := ParseInterval(flags.View.Interval, cfg.Status.Interval)
	if err != nil {
		return err
	}

	endpoints := cfg.Status.Endpoints
	if len(endpoints) == 0 {
		endpoints = statusboard.DemoEndpoints
	}

	var prober statusboard.Prober = statusboard.DemoProber()
	if cfg.Status.Mode == config.StatusModeHTTP {
		prober = statusboard.NewHTTPProber(cfg.Status.Timeout)
	}

	log, closeLog, err := openLogger(global, isFullScreen(cmd, flags.View))
	if err != nil {
		return err
	}
	defer closeLog()
	log.Debug("probing %d endpoints every %s (%s mode)", len(endpoints), interval, cfg.Status.Mode)

	scene := statusboard.NewScene(endpoints, prober)
	return runView(contextOf(cmd), cmd, viewRun{scene: scene, interval: interval, view: flags.View})
}
