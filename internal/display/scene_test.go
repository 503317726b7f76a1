package display

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/rileyhilliard/termviz/internal/frame"
)

// counterScene renders "n=<count>" after its first step.
type counterScene struct {
	mu        sync.Mutex
	polls     int
	count     int
	started   bool
	pollErr   error
	renderErr error
}

func (s *counterScene) Title() string { return "Counter" }

func (s *counterScene) Poll(context.Context) (func(), error) {
	s.mu.Lock()
	s.polls++
	err := s.pollErr
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.bump, nil
}

func (s *counterScene) bump() {
	s.started = true
	s.count++
}

func (s *counterScene) Render() (frame.Frame, error) {
	if s.renderErr != nil {
		return nil, s.renderErr
	}
	if !s.started {
		return nil, nil
	}
	return frame.Frame{"n=" + strconv.Itoa(s.count)}, nil
}

// pushScene never produces data on its own.
type pushScene struct {
	counterScene
}

func (s *pushScene) Poll(context.Context) (func(), error) { return nil, nil }

var errBoom = errors.New("boom")
