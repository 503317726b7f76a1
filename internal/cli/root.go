package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rileyhilliard/termviz/internal/config"
	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/rileyhilliard/termviz/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	Config  string
	NoColor bool
	LogFile string
	Debug   bool
}

var rootCmd = newRootCmd()

// newRootCmd builds the full command tree. Tests build fresh trees so flag
// state never leaks between them.
func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "termviz",
		Short: "Text-art dashboards for the terminal",
		Long: `termviz draws live text-art views in the terminal:

  dashboard  per-system CPU, RAM and network sparklines
  graph      adjacency matrices laid out on a circle
  status     a live/error board for HTTP endpoints

Run without a command on a terminal to pick a view from a menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.Config, "config", "", "config file (default: .termviz.yaml, then ~/.config/termviz/config.yaml)")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	pf.StringVar(&flags.LogFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&flags.Debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newDashboardCmd(flags),
		newGraphCmd(flags),
		newStatusCmd(flags),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if isUnknownCommandError(err) {
			fmt.Fprintf(os.Stderr, "✗ Unknown command %q\n\n  Run 'termviz --help' to see the available views\n", extractUnknownCommand(err))
		} else {
			fmt.Fprint(os.Stderr, err.Error())
		}
		stop()
		os.Exit(1)
	}
}

// loadConfig finds, loads and validates the config, then applies color settings.
func loadConfig(flags *globalFlags, apply func(*config.Config)) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(flags.Config)
	if err != nil {
		return nil, err
	}
	if apply != nil {
		apply(cfg)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if cfg.Output.Color == "always" && !flags.NoColor {
		ui.ForceColors()
	} else {
		ui.ConfigureColors(flags.NoColor || cfg.Output.Color == "never")
	}
	return cfg, nil
}

// runMenu lets the user pick a view. Without a terminal it prints help.
func runMenu(cmd *cobra.Command, flags *globalFlags) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return cmd.Help()
	}

	view, err := ui.ChooseView()
	if err != nil {
		return err
	}

	switch view {
	case ui.ViewDashboard:
		return runDashboard(cmd, flags, &dashboardFlags{})
	case ui.ViewGraph:
		return runGraph(cmd, flags, &graphFlags{})
	case ui.ViewStatus:
		return runStatus(cmd, flags, &statusFlags{})
	default:
		return errors.New(errors.ErrInput, "Unknown view "+view, "Pick one of the listed views")
	}
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "termviz"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
