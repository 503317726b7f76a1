// Package cli implements the termviz command-line interface.
//
// The root command is "termviz" with one subcommand per view:
//
//	termviz dashboard   - per-system CPU, RAM and network sparklines
//	termviz graph       - adjacency matrices on a circle
//	termviz status      - live/error board for HTTP endpoints
//	termviz version     - build information
//	termviz completion  - shell completion scripts (added by Cobra)
//
// Run bare on a terminal, termviz offers a menu of the three views.
//
// # Flag Handling
//
// Global flags (--config, --no-color, --log-file, --debug) are persistent on
// the root command. Every view adds --interval, --once and --plain through
// AddViewFlags. View-specific flags override the loaded config only when they
// are set explicitly, so an unset flag never masks a config value.
//
// # Logging
//
// A full-screen view owns the terminal, so logs go to --log-file or nowhere.
// Line output (--once, --plain, or a pipe) logs to stderr.
package cli
