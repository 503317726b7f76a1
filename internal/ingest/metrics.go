package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for termviz_ingest_batches_total.
const (
	ResultAccepted = "accepted"
	ResultInvalid  = "invalid"
	ResultLimited  = "limited"
)

// Metrics holds the ingestion counters on a private registry, so several
// servers (or tests) never collide on the global one.
type Metrics struct {
	Registry *prometheus.Registry
	batches  *prometheus.CounterVec
	entities prometheus.Gauge
}

// NewMetrics registers the ingestion collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		batches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "termviz_ingest_batches_total",
			Help: "Batches received on /data, by outcome",
		}, []string{"result"}),
		entities: factory.NewGauge(prometheus.GaugeOpts{
			Name: "termviz_ingest_entities",
			Help: "Number of entities in the last accepted batch",
		}),
	}
}

func (m *Metrics) observe(result string) {
	m.batches.WithLabelValues(result).Inc()
}

func (m *Metrics) accepted(entities int) {
	m.observe(ResultAccepted)
	m.entities.Set(float64(entities))
}
