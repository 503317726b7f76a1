package statusboard

import (
	"github.com/rileyhilliard/termviz/internal/frame"
)

// Header is the first line of the status board.
const Header = "📊 API Status Dashboard"

// Render draws the header, a blank line, then one "<icon>  <url>" line per result.
func Render(results []Result) frame.Frame {
	out := make(frame.Frame, 0, len(results)+2)
	out = append(out, Header, "")
	for _, r := range results {
		out = append(out, r.Status.Icon()+"  "+r.URL)
	}
	return out
}
