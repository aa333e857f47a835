// Package metric defines the Prometheus instrumentation for the ontograph
// engine: load pipeline outcomes and query service activity.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all engine-level metrics.
type Metrics struct {
	// Load pipeline
	TriplesLoaded prometheus.Gauge
	TermsInterned prometheus.Gauge
	LoadsTotal    *prometheus.CounterVec
	LoadDuration  prometheus.Histogram

	// Query service
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		TriplesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ontograph",
			Subsystem: "store",
			Name:      "triples_loaded",
			Help:      "Number of triples in the current snapshot",
		}),

		TermsInterned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ontograph",
			Subsystem: "store",
			Name:      "terms_interned",
			Help:      "Number of distinct interned terms in the current snapshot",
		}),

		LoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontograph",
				Subsystem: "load",
				Name:      "total",
				Help:      "Total number of snapshot loads",
			},
			[]string{"status"},
		),

		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ontograph",
			Subsystem: "load",
			Name:      "duration_seconds",
			Help:      "Snapshot load duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ontograph",
				Subsystem: "query",
				Name:      "total",
				Help:      "Total number of queries served",
			},
			[]string{"operation", "status"},
		),

		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ontograph",
				Subsystem: "query",
				Name:      "duration_seconds",
				Help:      "Query evaluation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.TriplesLoaded,
		m.TermsInterned,
		m.LoadsTotal,
		m.LoadDuration,
		m.QueriesTotal,
		m.QueryDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveLoad records one load attempt.
func (m *Metrics) ObserveLoad(triples, terms int, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	} else {
		m.TriplesLoaded.Set(float64(triples))
		m.TermsInterned.Set(float64(terms))
	}
	m.LoadsTotal.WithLabelValues(status).Inc()
	m.LoadDuration.Observe(elapsed.Seconds())
}

// ObserveQuery records one served query.
func (m *Metrics) ObserveQuery(operation string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.QueriesTotal.WithLabelValues(operation, status).Inc()
	m.QueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
