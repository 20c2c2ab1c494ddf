package bridge

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics tracks per-method call counts and latency on a private
// registry, keeping the default registry free of bridge series.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "deckhand_bridge_requests_total",
			Help: "Invoke requests by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "deckhand_bridge_request_duration_seconds",
			Help:    "Invoke handler latency by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

func (m *metrics) observe(method, outcome string, elapsed time.Duration) {
	m.requests.WithLabelValues(method, outcome).Inc()
	if outcome != "unknown" {
		m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	}
}
