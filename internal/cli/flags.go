package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/spf13/cobra"
)

// ViewFlags holds the flags every view command shares.
type ViewFlags struct {
	Interval string
	Once     bool
	Plain    bool
}

// AddViewFlags registers --interval, --once and --plain on a command.
func AddViewFlags(cmd *cobra.Command, flags *ViewFlags) {
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "refresh interval (e.g., 1s, 500ms)")
	cmd.Flags().BoolVar(&flags.Once, "once", false, "print a single frame and exit")
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "print frames as plain lines instead of taking over the screen")
}

// ParseInterval parses an interval flag, returning def when the flag is empty.
func ParseInterval(flag string, def time.Duration) (time.Duration, error) {
	if flag == "" {
		return def, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 1s, 2m, or 500ms.")
	}
	if d <= 0 {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval must be positive, got %s", flag),
			"Try something like 1s, 2m, or 500ms.")
	}
	return d, nil
}
