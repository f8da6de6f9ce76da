// Package metrics provides Prometheus metrics for calls made to the registration service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels.
const (
	OpSubmit = "submit"
	OpLookup = "lookup"
	OpRemove = "remove"
	OpHealth = "health"
)

// Metrics contains the client-side request metrics.
type Metrics struct {
	RequestsTotal          *prometheus.CounterVec   // by operation and status code
	RequestErrorsTotal     *prometheus.CounterVec   // transport failures by operation
	RequestDurationSeconds *prometheus.HistogramVec // round trip latency by operation
	UnsafeRemovesRefused   prometheus.Counter
}

// New creates the metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them process-wide; tests use a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regsuite_registration_requests_total",
			Help: "Total requests sent to the registration service by operation and status code",
		}, []string{"operation", "code"}),

		RequestErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regsuite_registration_request_errors_total",
			Help: "Total requests that failed before a response was received",
		}, []string{"operation"}),

		RequestDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "regsuite_registration_request_duration_seconds",
			Help:    "Round trip latency of registration service requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),

		UnsafeRemovesRefused: factory.NewCounter(prometheus.CounterOpts{
			Name: "regsuite_registration_unsafe_removes_refused_total",
			Help: "Total DELETE requests refused locally because the citizen ID was malformed",
		}),
	}
}

// ObserveResponse records a completed round trip.
func (m *Metrics) ObserveResponse(operation string, statusCode int, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	m.RequestDurationSeconds.WithLabelValues(operation).Observe(durationSeconds)
}

// ObserveError records a round trip that produced no response.
func (m *Metrics) ObserveError(operation string, durationSeconds float64) {
	m.RequestErrorsTotal.WithLabelValues(operation).Inc()
	m.RequestDurationSeconds.WithLabelValues(operation).Observe(durationSeconds)
}

// IncrementUnsafeRemoves records a refused DELETE.
func (m *Metrics) IncrementUnsafeRemoves() {
	m.UnsafeRemovesRefused.Inc()
}
