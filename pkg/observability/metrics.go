/*
Package observability provides Prometheus instrumentation for the Strategos
engine. Metrics attach to a solve via domain.SearchHooks, so the search core
stays free of any metrics dependency.
*/
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/strategos/pkg/domain"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	NodesExpanded  prometheus.Counter
	NodesGenerated prometheus.Counter
	FrontierSize   prometheus.Gauge
	SolveDuration  *prometheus.HistogramVec
	SolveOutcomes  *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "strategos_nodes_expanded_total",
			Help: "Search nodes expanded.",
		}),
		NodesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "strategos_nodes_generated_total",
			Help: "Successor states generated.",
		}),
		FrontierSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "strategos_frontier_size",
			Help: "Current size of the search frontier.",
		}),
		SolveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "strategos_solve_duration_seconds",
			Help:    "Wall-clock duration of solve calls.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"outcome"}),
		SolveOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strategos_solve_outcomes_total",
			Help: "Solve calls by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.NodesExpanded, m.NodesGenerated, m.FrontierSize, m.SolveDuration, m.SolveOutcomes)
	return m
}

// Hooks returns search hooks that feed the collectors. The hooks are safe
// for parallel expansion because Prometheus collectors are goroutine-safe.
func (m *Metrics) Hooks() domain.SearchHooks {
	return domain.SearchHooks{
		OnExpand: func(frontier int) {
			m.NodesExpanded.Inc()
			m.FrontierSize.Set(float64(frontier))
		},
		OnGenerate: func() {
			m.NodesGenerated.Inc()
		},
		OnFinish: func(res *domain.Result) {
			outcome := string(res.Outcome)
			m.SolveOutcomes.WithLabelValues(outcome).Inc()
			m.SolveDuration.WithLabelValues(outcome).Observe(res.Duration.Seconds())
			m.FrontierSize.Set(0)
		},
	}
}

// ObserveDuration is a helper for callers that time a whole request rather
// than one search.
func (m *Metrics) ObserveDuration(outcome domain.Outcome, d time.Duration) {
	m.SolveDuration.WithLabelValues(string(outcome)).Observe(d.Seconds())
}
