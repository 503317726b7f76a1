package cli

import (
	"context"
	"os"
	"time"

	"github.com/rileyhilliard/termviz/internal/display"
	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/rileyhilliard/termviz/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// viewRun is everything runView needs to drive one scene.
type viewRun struct {
	scene    display.Scene
	interval time.Duration
	view     ViewFlags
	feed     display.Feed
}

// openLogger picks where logs go and installs the result as the default
// logger, which the display loop and ingest server fall back to. A full-screen
// view would be garbled by stderr output, so it logs only to --log-file.
// The returned func restores the previous default.
func openLogger(flags *globalFlags, fullScreen bool) (logger.Logger, func(), error) {
	log, closeLog, err := chooseLogger(flags, fullScreen)
	if err != nil {
		return nil, nil, err
	}
	previous := logger.Default()
	logger.SetDefault(log)
	return log, func() {
		logger.SetDefault(previous)
		closeLog()
	}, nil
}

func chooseLogger(flags *globalFlags, fullScreen bool) (logger.Logger, func(), error) {
	if flags.LogFile != "" {
		f, err := os.OpenFile(flags.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Can't open log file "+flags.LogFile,
				"Check the --log-file path and its permissions")
		}
		return logger.New(f, "termviz", true), func() { f.Close() }, nil
	}
	if fullScreen {
		return logger.Noop(), func() {}, nil
	}
	if flags.Debug {
		return logger.New(os.Stderr, "termviz", true), func() {}, nil
	}
	return logger.NewEnvLogger("termviz"), func() {}, nil
}

// isFullScreen reports whether a view would take over the terminal.
func isFullScreen(cmd *cobra.Command, v ViewFlags) bool {
	if v.Once || v.Plain {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runView(ctx context.Context, cmd *cobra.Command, r viewRun) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return display.Run(ctx, r.scene, display.RunOptions{
		Options: display.Options{Interval: r.interval},
		Feed:    r.feed,
		Once:    r.view.Once,
		Plain:   r.view.Plain,
		Out:     cmd.OutOrStdout(),
	})
}
