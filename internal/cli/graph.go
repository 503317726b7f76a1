package cli

import (
	"github.com/rileyhilliard/termviz/internal/config"
	"github.com/rileyhilliard/termviz/internal/graph"
	"github.com/spf13/cobra"
)

type graphFlags struct {
	View   ViewFlags
	File   string
	Width  int
	Height int
}

func newGraphCmd(global *globalFlags) *cobra.Command {
	flags := &graphFlags{}
	cmd := &cobra.Command{
		Use:     "graph",
		Aliases: []string{"network"},
		Short:   "Draw adjacency matrices as circle-layout graphs",
		Long: `Draw undirected graphs as text: nodes on a circle, edges as lines of '*'
and node labels "(i)" on top. Graphs cycle every --interval.

Graph files are YAML:

  graphs:
    - name: triangle
      matrix:
        - [0, 1, 1]
        - [1, 0, 1]
        - [1, 1, 0]

Examples:
  termviz graph
  termviz graph --file graphs.yaml --interval 5s
  termviz graph --once --width 60 --height 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, global, flags)
		},
	}

	AddViewFlags(cmd, &flags.View)
	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "YAML file with graphs to show")
	cmd.Flags().IntVar(&flags.Width, "width", 0, "canvas width in cells")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "canvas height in cells")
	return cmd
}

func runGraph(cmd *cobra.Command, global *globalFlags, flags *graphFlags) error {
	cfg, err := loadConfig(global, func(c *config.Config) {
		fs := cmd.Flags()
		if fs.Changed("file") {
			c.Graph.File = config.ExpandTilde(flags.File)
		}
		if fs.Changed("width") {
			c.Graph.Width = flags.Width
		}
		if fs.Changed("height") {
			c.Graph.Height = flags.Height
		}
	})
	if err != nil {
		return err
	}

	interval, err := ParseInterval(flags.View.Interval, cfg.Graph.Interval)
	if err != nil {
		return err
	}

	graphs := graph.Builtin()
	if cfg.Graph.File != "" {
		graphs, err = graph.LoadFile(cfg.Graph.File)
		if err != nil {
			return err
		}
	}

	log, closeLog, err := openLogger(global, isFullScreen(cmd, flags.View))
	if err != nil {
		return err
	}
	defer closeLog()
	log.Debug("cycling %d graphs every %s", len(graphs), interval)

	scene := graph.NewScene(graphs, graph.NewRenderer(cfg.Graph.Width, cfg.Graph.Height))
	return runView(contextOf(cmd), cmd, viewRun{scene: scene, interval: interval, view: flags.View})
}
