package display

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Feed carries steps from external producers into a running display.
type Feed chan func()

// NewFeed creates a feed that buffers up to size steps.
func NewFeed(size int) Feed {
	return make(Feed, size)
}

// Push queues a step, blocking until it is accepted or ctx is done.
func (f Feed) Push(ctx context.Context, step func()) error {
	select {
	case f <- step:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Bridge forwards externally produced steps to the Bubble Tea program via
// program.Send(). This is goroutine-safe.
type Bridge struct {
	program *tea.Program
}

// NewBridge creates a bridge to program.
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{program: program}
}

// Send delivers one step to the program.
func (b *Bridge) Send(step func()) {
	b.program.Send(StepMsg{Step: step})
}

// Forward sends every step from feed until ctx is done or feed is closed.
func (b *Bridge) Forward(ctx context.Context, feed Feed) {
	for {
		select {
		case <-ctx.Done():
			return
		case step, ok := <-feed:
			if !ok {
				return
			}
			b.Send(step)
		}
	}
}
