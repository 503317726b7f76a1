package display

import "time"

// tickMsg signals a periodic poll.
type tickMsg time.Time

// polledMsg carries the result of one Scene.Poll.
type polledMsg struct {
	step func()
	err  error
	time time.Time
}

// StepMsg delivers a step produced outside the display loop, e.g. a batch
// received over HTTP.
type StepMsg struct {
	Step func()
}
