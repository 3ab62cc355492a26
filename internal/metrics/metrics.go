// Package metrics holds the service's Prometheus collectors on a private registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	BookingsCreated      prometheus.Counter
	SlotConflicts        prometheus.Counter
	BookingStatusChanges *prometheus.CounterVec
	BookingsDeleted      prometheus.Counter
	RemindersSent        *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings accepted.",
		}),
		SlotConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_slot_conflicts_total",
			Help: "Booking writes rejected because the slot was taken.",
		}),
		BookingStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_status_changes_total",
			Help: "Booking status updates by target status.",
		}, []string{"estado"}),
		BookingsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookings_deleted_total",
			Help: "Bookings removed.",
		}),
		RemindersSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_reminders_total",
			Help: "Reminder sends by outcome.",
		}, []string{"result"}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.BookingsCreated,
		m.SlotConflicts,
		m.BookingStatusChanges,
		m.BookingsDeleted,
		m.RemindersSent,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
