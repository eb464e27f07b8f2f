package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics метрики сервера, зарегистрированные в собственном registry
type ServerMetrics struct {
	CounterUpdates  *prometheus.CounterVec
	CounterFailures *prometheus.CounterVec
	UpdateDuration  *prometheus.HistogramVec
	PublishFailures prometheus.Counter
	CategoryClicks  *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates server metrics in a fresh registry under namespace.
func New(namespace string) *ServerMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &ServerMetrics{
		CounterUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "counters",
				Name:      "updates_total",
				Help:      "Applied like/dislike deltas",
			},
			[]string{"target", "field", "direction"},
		),
		CounterFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "counters",
				Name:      "failures_total",
				Help:      "Rejected or failed counter updates by reason",
			},
			[]string{"target", "reason"},
		),
		UpdateDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "counters",
				Name:      "update_duration_seconds",
				Help:      "Time spent applying a counter delta in storage",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"target"},
		),
		PublishFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "events",
				Name:      "publish_failures_total",
				Help:      "Counter events that could not be published",
			},
		),
		CategoryClicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "analytics",
				Name:      "category_clicks_total",
				Help:      "Category clicks received",
			},
			[]string{"category"},
		),
		registry: reg,
	}
}

// ObserveUpdate records one successful counter delta.
func (m *ServerMetrics) ObserveUpdate(target, field string, delta int, took time.Duration) {
	direction := "up"
	if delta < 0 {
		direction = "down"
	}
	m.CounterUpdates.WithLabelValues(target, field, direction).Inc()
	m.UpdateDuration.WithLabelValues(target).Observe(took.Seconds())
}

// ObserveFailure records a rejected or failed counter delta.
func (m *ServerMetrics) ObserveFailure(target, reason string) {
	m.CounterFailures.WithLabelValues(target, reason).Inc()
}

// Registry returns the registry the metrics are registered in.
func (m *ServerMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the /metrics handler.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
