package statusboard

import "time"

// Status is the health of one endpoint.
type Status int

const (
	Degraded Status = iota
	Live
	Error
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Live:
		return "Live"
	case Error:
		return "Error"
	default:
		return "Degraded"
	}
}

// Icon returns the glyph shown in front of the endpoint.
func (s Status) Icon() string {
	switch s {
	case Live:
		return "✅"
	case Error:
		return "❌"
	default:
		return "⚠️"
	}
}

// Result is the outcome of probing one endpoint.
type Result struct {
	URL     string
	Status  Status
	Code    int // HTTP status code, zero when no response arrived
	Latency time.Duration
	Err     error
}
