package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the HTTP API.
type Metrics struct {
	Requests        *prometheus.CounterVec   // labels: route, status
	RequestDuration *prometheus.HistogramVec // labels: route
	Exports         *prometheus.CounterVec   // labels: format, outcome={success,error}
	RecordsServed   prometheus.Counter
	AssetAvailable  prometheus.Gauge
}

// NewMetrics creates and registers all API metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.Exports,
		m.RecordsServed,
		m.AssetAvailable,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests
// can build many servers in one process.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agrigen",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agrigen",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"route"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agrigen",
			Name:      "exports_total",
			Help:      "Export downloads by format and outcome.",
		}, []string{"format", "outcome"}),
		RecordsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agrigen",
			Name:      "records_served_total",
			Help:      "Records returned by the records endpoint.",
		}),
		AssetAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agrigen",
			Name:      "asset_available",
			Help:      "1 when the animation asset was fetched, 0 otherwise.",
		}),
	}
}
