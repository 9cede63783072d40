// Package metrics holds the Prometheus collectors for the AlpinaConnect API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// All methods are safe on a nil receiver so unit tests can pass nil instead
// of registering collectors on the default registry.
type Metrics struct {
	RequestsSubmitted prometheus.Counter
	RequestsApproved  prometheus.Counter
	RequestsRejected  prometheus.Counter
	BookingRefusals   *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RequestsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alpina_booking_requests_submitted_total",
			Help: "Total number of booking requests accepted into the pending set",
		}),
		RequestsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alpina_booking_requests_approved_total",
			Help: "Total number of booking requests approved by guides",
		}),
		RequestsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alpina_booking_requests_rejected_total",
			Help: "Total number of booking requests rejected by guides",
		}),
		BookingRefusals: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alpina_booking_refusals_total",
			Help: "Booking operations refused by the availability evaluator, by reason",
		}, []string{"reason"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alpina_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route pattern and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Submitted records an accepted booking request.
func (m *Metrics) Submitted() {
	if m == nil {
		return
	}
	m.RequestsSubmitted.Inc()
}

// Approved records an approved booking request.
func (m *Metrics) Approved() {
	if m == nil {
		return
	}
	m.RequestsApproved.Inc()
}

// Rejected records a rejected booking request.
func (m *Metrics) Rejected() {
	if m == nil {
		return
	}
	m.RequestsRejected.Inc()
}

// Refused records a refusal with the given reason label
// (duplicate, out_of_window, full, not_pending, capacity_exceeded).
func (m *Metrics) Refused(reason string) {
	if m == nil {
		return
	}
	m.BookingRefusals.WithLabelValues(reason).Inc()
}

// ObserveRequest records one HTTP request's latency.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
