package statusboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/moved":
			w.WriteHeader(http.StatusNotModified)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/down":
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	p := NewHTTPProber(time.Second)

	tests := []struct {
		path   string
		status Status
		code   int
	}{
		{"/ok", Live, 200},
		{"/moved", Live, 304},
		{"/missing", Degraded, 404},
		{"/down", Error, 503},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res := p.Probe(context.Background(), 0, srv.URL+tt.path)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.code, res.Code)
			assert.NoError(t, res.Err)
		})
	}
}

func TestHTTPProber_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := NewHTTPProber(time.Second).Probe(context.Background(), 0, url)
	assert.Equal(t, Error, res.Status)
	assert.Error(t, res.Err)
	assert.Zero(t, res.Code)
}

func TestHTTPProber_BadURL(t *testing.T) {
	res := NewHTTPProber(0).Probe(context.Background(), 0, "://nope")
	assert.Equal(t, Error, res.Status)
	assert.Error(t, res.Err)
}

func TestDemoProber(t *testing.T) {
	p := DemoProber()
	ctx := context.Background()

	even := ProbeAll(ctx, p, 0, DemoEndpoints)
	odd := ProbeAll(ctx, p, 1, DemoEndpoints)

	require.Len(t, even, 3)
	assert.Equal(t, []Status{Live, Live, Error}, statuses(even))
	assert.Equal(t, []Status{Error, Live, Error}, statuses(odd))

	assert.Equal(t, Degraded, p.Probe(ctx, 0, "https://unscripted.test").Status)
}

func TestProbeAll_KeepsOrder(t *testing.T) {
	urls := []string{"c", "a", "b"}
	results := ProbeAll(context.Background(), ScriptedProber{}, 0, urls)
	for i, r := range results {
		assert.Equal(t, urls[i], r.URL)
	}
}

func statuses(results []Result) []Status {
	out := make([]Status, len(results))
	for i, r := range results {
		out[i] = r.Status
	}
	return out
}
