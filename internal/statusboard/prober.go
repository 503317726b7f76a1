package statusboard

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// DefaultTimeout bounds a single HTTP probe.
const DefaultTimeout = 5 * time.Second

// Prober checks one endpoint. round counts polls since the board started.
type Prober interface {
	Probe(ctx context.Context, round int, url string) Result
}

// HTTPProber checks endpoints with a GET request.
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber creates a prober whose requests give up after timeout.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProber{client: &http.Client{Timeout: timeout}}
}

// Probe issues a GET. 2xx and 3xx are Live, 5xx and transport failures are
// Error, anything else is Degraded.
func (p *HTTPProber) Probe(ctx context.Context, _ int, url string) Result {
	start := time.Now()
	res := Result{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		res.Status = Error
		res.Err = err
		return res
	}
	req.Header.Set("User-Agent", "termviz")

	resp, err := p.client.Do(req)
	res.Latency = time.Since(start)
	if err != nil {
		res.Status = Error
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.Code = resp.StatusCode
	res.Status = classify(resp.StatusCode)
	return res
}

func classify(code int) Status {
	switch {
	case code >= 200 && code < 400:
		return Live
	case code >= 500:
		return Error
	default:
		return Degraded
	}
}

// ScriptedProber replays a fixed status sequence per URL, one entry per round.
// URLs without a script are Degraded.
type ScriptedProber struct {
	Script map[string][]Status
}

// Probe returns the scripted status for round.
func (p ScriptedProber) Probe(_ context.Context, round int, url string) Result {
	seq := p.Script[url]
	if len(seq) == 0 {
		return Result{URL: url, Status: Degraded}
	}
	return Result{URL: url, Status: seq[round%len(seq)]}
}

// DemoEndpoints are the endpoints shown by the fake board.
var DemoEndpoints = []string{
	"https://api.github.com",
	"https://example.com",
	"https://httpstat.us/503",
}

// DemoProber returns a scripted prober where the first demo endpoint flips
// between Live and Error every round, the second is always Live and the
// third always Error.
func DemoProber() ScriptedProber {
	return ScriptedProber{Script: map[string][]Status{
		DemoEndpoints[0]: {Live, Error},
		DemoEndpoints[1]: {Live},
		DemoEndpoints[2]: {Error},
	}}
}

// ProbeAll checks every URL concurrently and returns results in input order.
func ProbeAll(ctx context.Context, p Prober, round int, urls []string) []Result {
	results := make([]Result, len(urls))
	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			results[i] = p.Probe(ctx, round, url)
		}(i, url)
	}
	wg.Wait()
	return results
}
