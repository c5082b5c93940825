package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics.
const metricsNamespace = "graphq"

// Outcome labels.
const (
	OutcomeOK             = "ok"
	OutcomeUnreachable    = "unreachable"
	OutcomeUnknownVertex  = "unknown_vertex"
	OutcomeNegativeWeight = "negative_weight"
	OutcomeError          = "error"
)

// Metrics holds the Prometheus collectors of an Engine.
//
// Thread Safety: all operations are thread-safe.
type Metrics struct {
	// QueriesTotal counts queries.
	// Labels: kind (dfs, bfs, components, path, paths), algorithm (bfs,
	// dijkstra, none), outcome (ok, unreachable, unknown_vertex,
	// negative_weight, error).
	QueriesTotal *prometheus.CounterVec

	// QueryDuration observes query latency in seconds.
	// Labels: kind
	QueryDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg gets a private registry, so tests and throwaway engines never
// collide on the global default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "queries_total",
				Help:      "Total number of graph queries by kind, algorithm and outcome",
			},
			[]string{"kind", "algorithm", "outcome"},
		),
		QueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "query_duration_seconds",
				Help:      "Graph query latency in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"kind"},
		),
	}
}

// record counts one finished query.
func (m *Metrics) record(kind Kind, algorithm, outcome string, seconds float64) {
	m.QueriesTotal.WithLabelValues(string(kind), algorithm, outcome).Inc()
	m.QueryDuration.WithLabelValues(string(kind)).Observe(seconds)
}
