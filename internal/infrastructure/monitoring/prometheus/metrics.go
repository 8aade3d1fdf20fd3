// Package prometheus exposes the service's operational metrics.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles all collectors for the interaction service.  A single
// instance is created at startup and shared by the HTTP layer and the
// prediction pipeline.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	PredictionsTotal  *prometheus.CounterVec
	PredictionLatency prometheus.Histogram

	SourceRequestsTotal *prometheus.CounterVec
	CacheOpsTotal       *prometheus.CounterVec
}

// Path label values for PredictionsTotal.
const (
	PathModel    = "model"
	PathFallback = "fallback"
)

// New creates a Metrics instance with its own registry, pre-registering all
// collectors.  Go runtime and process collectors are included.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dfi",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dfi",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dfi",
			Subsystem: "interaction",
			Name:      "predictions_total",
			Help:      "Interaction predictions by scoring path and effect.",
		}, []string{"path", "effect"}),
		PredictionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dfi",
			Subsystem: "interaction",
			Name:      "prediction_duration_seconds",
			Help:      "End to end prediction latency including upstream lookups.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SourceRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dfi",
			Subsystem: "sources",
			Name:      "requests_total",
			Help:      "Upstream source requests by source and outcome.",
		}, []string{"source", "outcome"}),
		CacheOpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dfi",
			Subsystem: "cache",
			Name:      "operations_total",
			Help:      "Cache operations by kind (hit, miss, set, error).",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PredictionsTotal,
		m.PredictionLatency,
		m.SourceRequestsTotal,
		m.CacheOpsTotal,
	)
	return m
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObservePrediction records one completed prediction.
func (m *Metrics) ObservePrediction(path, effect string, elapsed time.Duration) {
	m.PredictionsTotal.WithLabelValues(path, effect).Inc()
	m.PredictionLatency.Observe(elapsed.Seconds())
}

// ObserveSource records one upstream request outcome ("ok", "error",
// "timeout", "not_found").
func (m *Metrics) ObserveSource(source, outcome string) {
	m.SourceRequestsTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveCache records one cache operation outcome.
func (m *Metrics) ObserveCache(kind string) {
	m.CacheOpsTotal.WithLabelValues(kind).Inc()
}
