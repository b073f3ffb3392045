package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query kinds used as the "kind" label.
const (
	kindFilter  = "filter"
	kindMatch   = "match"
	kindSuggest = "suggest"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	QueriesTotal   *prometheus.CounterVec
	ResultSize     *prometheus.HistogramVec
	FallbacksTotal prometheus.Counter
	EmptyTotal     *prometheus.CounterVec
}

// NewMetrics creates the engine collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		QueriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "distrofinder",
				Subsystem: "catalog",
				Name:      "queries_total",
				Help:      "Total catalog queries by kind",
			},
			[]string{"kind"},
		),
		ResultSize: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "distrofinder",
				Subsystem: "catalog",
				Name:      "result_size",
				Help:      "Number of distros returned per query",
				Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
			},
			[]string{"kind"},
		),
		FallbacksTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: "distrofinder",
				Subsystem: "catalog",
				Name:      "match_fallbacks_total",
				Help:      "Questionnaire matches answered with the default distro",
			},
		),
		EmptyTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "distrofinder",
				Subsystem: "catalog",
				Name:      "empty_results_total",
				Help:      "Queries that returned no distros",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) observe(kind string, n int) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(kind).Inc()
	m.ResultSize.WithLabelValues(kind).Observe(float64(n))
	if n == 0 {
		m.EmptyTotal.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) fallback() {
	if m == nil {
		return
	}
	m.FallbacksTotal.Inc()
}
