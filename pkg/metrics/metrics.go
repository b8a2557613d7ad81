// Package metrics collects per-run counters for outbound requests, dispatched
// queries and discovered domains. A run has no long-lived scrape endpoint, so
// the registry is flushed to a node_exporter textfile when the run ends.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "revwhois"

// Recorder owns a private registry so that repeated runs in one process (tests)
// never collide on the global one. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	queries  *prometheus.CounterVec
	domains  prometheus.Gauge
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Outbound HTTP attempts by method and status code (0 for transport errors).",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of outbound HTTP attempts.",
			Buckets:   DefaultBuckets,
		}, []string{"method"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Reverse-WHOIS queries by kind and outcome.",
		}, []string{"kind", "outcome"}),
		domains: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "discovered_domains",
			Help:      "Size of the aggregated domain set.",
		}),
	}
	r.registry.MustRegister(r.requests, r.latency, r.queries, r.domains)

	return r
}

// ObserveRequest records one HTTP attempt. A zero code means the attempt failed
// before a response was received.
func (r *Recorder) ObserveRequest(method string, code int, took time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	r.latency.WithLabelValues(method).Observe(took.Seconds())
}

// ObserveQuery records the outcome of one dispatched reverse-WHOIS query.
func (r *Recorder) ObserveQuery(kind, outcome string) {
	if r == nil {
		return
	}
	r.queries.WithLabelValues(kind, outcome).Inc()
}

// SetDomains records the size of the aggregated domain set.
func (r *Recorder) SetDomains(n int) {
	if r == nil {
		return
	}
	r.domains.Set(float64(n))
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all collected metrics to path in the Prometheus text
// format. The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}
