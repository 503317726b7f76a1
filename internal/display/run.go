package display

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/rileyhilliard/termviz/internal/frame"
)

// RunOptions configures Run and RunPlain.
type RunOptions struct {
	Options
	// Feed delivers steps produced outside the loop. May be nil.
	Feed Feed
	// Once prints a single frame and returns (plain output only).
	Once bool
	// Plain forces line output even on a terminal.
	Plain bool
	// Out is where plain frames go; nil means stdout.
	Out io.Writer
}

// Run drives scene until ctx is done or the user quits. On a terminal it
// takes over the screen; otherwise, or with Plain or Once set, it prints
// frames as lines.
func Run(ctx context.Context, scene Scene, opts RunOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if opts.Plain || opts.Once || !isTerminal(out) {
		return RunPlain(ctx, out, scene, opts)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(
		NewModel(ctx, scene, opts.Options),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if opts.Feed != nil {
		go NewBridge(program).Forward(ctx, opts.Feed)
	}

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Display loop failed",
			"Run with --plain to print frames without taking over the terminal")
	}
	return nil
}

// RunPlain prints a frame after every poll or external step. Frames are
// separated by a blank line. With opts.Once it returns after the first frame.
func RunPlain(ctx context.Context, w io.Writer, scene Scene, opts RunOptions) error {
	o := opts.withDefaults()
	ticker := time.NewTicker(o.Interval)
	defer ticker.Stop()

	printed := 0
	emit := func() error {
		f, err := scene.Render()
		if err != nil {
			return err
		}
		if f == nil {
			return nil
		}
		if printed > 0 {
			fmt.Fprintln(w)
		}
		printed++
		return writeFrame(w, f)
	}

	poll := func() error {
		step, err := scene.Poll(ctx)
		if err != nil {
			return err
		}
		if step != nil {
			step()
		}
		return emit()
	}

	if err := poll(); err != nil {
		if opts.Once {
			return err
		}
		o.Logger.Warn("poll %s: %v", scene.Title(), err)
	}

	for {
		if opts.Once && printed > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := poll(); err != nil {
				if opts.Once {
					return err
				}
				o.Logger.Warn("poll %s: %v", scene.Title(), err)
			}
		case step, ok := <-opts.Feed:
			if !ok {
				return nil
			}
			if step != nil {
				step()
			}
			if err := emit(); err != nil {
				return err
			}
		}
	}
}

func writeFrame(w io.Writer, f frame.Frame) error {
	_, err := io.WriteString(w, f.String()+"\n")
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
