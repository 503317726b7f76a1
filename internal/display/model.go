package display

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/termviz/internal/frame"
	"github.com/rileyhilliard/termviz/internal/logger"
	"github.com/rileyhilliard/termviz/internal/ui"
)

// DefaultInterval is used when Options.Interval is not positive.
const DefaultInterval = time.Second

// Options configures the display loop.
type Options struct {
	Interval time.Duration
	Logger   logger.Logger
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Logger == nil {
		o.Logger = logger.Default()
	}
	return o
}

// Model is the Bubble Tea model that drives a Scene.
type Model struct {
	ctx      context.Context
	scene    Scene
	interval time.Duration
	log      logger.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	frame      frame.Frame
	err        error
	lastUpdate time.Time
	polling    bool
	paused     bool
	showHelp   bool
	quitting   bool
	width      int
	height     int
}

// NewModel creates a model for scene. Polls run with ctx.
func NewModel(ctx context.Context, scene Scene, opts Options) Model {
	opts = opts.withDefaults()
	return Model{
		ctx:      ctx,
		scene:    scene,
		interval: opts.Interval,
		log:      opts.Logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  ui.NewSpinner(),
		polling:  true, // Init issues the first poll
	}
}

// Init starts the tick timer, the spinner and an immediate poll.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.pollCmd(),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		cmds := []tea.Cmd{m.tickCmd()}
		if !m.paused && !m.polling {
			m.polling = true
			cmds = append(cmds, m.pollCmd())
		}
		return m, tea.Batch(cmds...)

	case polledMsg:
		m.polling = false
		if msg.err != nil {
			m.err = msg.err
			m.log.Warn("poll %s: %v", m.scene.Title(), msg.err)
			return m, nil
		}
		m.apply(msg.step, msg.time)

	case StepMsg:
		m.apply(msg.Step, time.Now())

	case spinner.TickMsg:
		if m.frame != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Refresh):
		if !m.polling {
			m.polling = true
			return m, m.pollCmd()
		}
	}
	return m, nil
}

// apply runs a step and re-renders the scene.
func (m *Model) apply(step func(), at time.Time) {
	if step != nil {
		step()
	}
	f, err := m.scene.Render()
	if err != nil {
		m.err = err
		m.log.Error("render %s: %v", m.scene.Title(), err)
		return
	}
	m.err = nil
	if f != nil {
		m.frame = f
		m.lastUpdate = at
	}
}

// View renders the header, the current frame and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := ""
	switch {
	case m.paused:
		status = ui.WarningStyle.Render(ui.SymbolPaused + " paused")
	case !m.lastUpdate.IsZero():
		status = ui.SuccessStyle.Render(ui.SymbolLive) + " " +
			ui.MutedStyle.Render("updated "+m.lastUpdate.Format("15:04:05"))
	}

	var b strings.Builder
	b.WriteString(ui.RenderHeader(ui.HeaderInfo{
		Title:  m.scene.Title(),
		Status: status,
		Width:  max(m.frame.Width(), ui.HeaderWidth),
	}))

	if m.frame == nil {
		b.WriteString(m.spinner.View() + " Waiting for data...")
		b.WriteString("\n")
	} else {
		b.WriteString(m.frame.String())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ui.ErrorStyle.Render(ui.SymbolFail + " " + firstLine(m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Frame returns the last frame rendered by the scene.
func (m Model) Frame() frame.Frame {
	return m.frame
}

// Paused reports whether polling is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Err returns the last poll or render error, cleared by the next good render.
func (m Model) Err() error {
	return m.err
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) pollCmd() tea.Cmd {
	ctx, scene := m.ctx, m.scene
	return func() tea.Msg {
		step, err := scene.Poll(ctx)
		return polledMsg{step: step, err: err, time: time.Now()}
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(s, ui.SymbolFail))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
