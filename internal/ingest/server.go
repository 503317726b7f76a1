package ingest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/rileyhilliard/termviz/internal/logger"
	"github.com/rileyhilliard/termviz/internal/monitor"
)

// Defaults for Options.
const (
	DefaultAddr        = "127.0.0.1:3000"
	DefaultRate        = 20.0
	DefaultBurst       = 40
	DefaultMaxEntities = 64
	// BodyLimit caps a POST /data body; larger requests get 413.
	BodyLimit          = "256K"
	shutdownTimeout    = 5 * time.Second
)

// Sink receives every accepted batch. It is called on the request goroutine
// and must hand the batch off rather than render it.
type Sink func(monitor.Batch)

// Options configures a Server.
type Options struct {
	Addr        string
	Rate        float64 // accepted requests per second across all clients; <= 0 disables limiting
	Burst       int
	MaxEntities int
	Logger      logger.Logger
}

// Server accepts metric batches over HTTP.
type Server struct {
	opts    Options
	echo    *echo.Echo
	sink    Sink
	limiter *rate.Limiter
	metrics *Metrics
	now     func() time.Time
	log     logger.Logger
}

// AcceptedResponse is the body of a 202 reply.
type AcceptedResponse struct {
	ID       string `json:"id"`
	Entities int    `json:"entities"`
}

// ErrorResponse is the body of a rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewServer builds the HTTP routes. Nothing listens until Start.
func NewServer(opts Options, sink Sink) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultBurst
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	s := &Server{
		opts:    opts,
		echo:    echo.New(),
		sink:    sink,
		metrics: NewMetrics(),
		now:     time.Now,
		log:     opts.Logger,
	}
	if opts.Rate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.Rate), opts.Burst)
	}

	// Echo's own logger writes to stdout, which belongs to the display.
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Logger.SetOutput(io.Discard)
	s.echo.Logger.SetLevel(glog.OFF)
	s.echo.Use(s.logRequests)

	s.echo.POST("/data", s.handleData, middleware.BodyLimit(BodyLimit))
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	return s
}

// Handler exposes the routes for embedding or testing.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

// Start listens until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on http://%s", s.opts.Addr)
		errCh <- s.echo.Start(s.opts.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.WrapWithCode(err, errors.ErrIngest,
				"Can't listen on "+s.opts.Addr,
				"Pick a free address with --listen or listen.addr")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return errors.WrapWithCode(err, errors.ErrIngest, "Ingestion server did not shut down cleanly", "")
	}
	s.log.Debug("ingestion server stopped")
	return nil
}

func (s *Server) handleData(c echo.Context) error {
	if s.limiter != nil && !s.limiter.Allow() {
		s.metrics.observe(ResultLimited)
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
	}

	var p Payload
	if err := json.NewDecoder(c.Request().Body).Decode(&p); err != nil {
		s.metrics.observe(ResultInvalid)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed JSON: " + err.Error()})
	}

	samples, err := p.Samples(s.opts.MaxEntities)
	if err != nil {
		s.metrics.observe(ResultInvalid)
		msg := err.Error()
		if e, ok := err.(*errors.Error); ok {
			msg = e.Message
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}

	batch := monitor.Batch{
		ID:       uuid.NewString(),
		Received: s.now(),
		Samples:  samples,
	}
	if s.sink != nil {
		s.sink(batch)
	}
	s.metrics.accepted(len(samples))
	s.log.Debug("accepted batch %s with %d entities", batch.ID, len(samples))

	return c.JSON(http.StatusAccepted, AcceptedResponse{ID: batch.ID, Entities: len(samples)})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.log.Debug("%s %s -> %d (%s)", c.Request().Method, c.Request().URL.Path, c.Response().Status, time.Since(start))
		return err
	}
}
