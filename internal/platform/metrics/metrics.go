// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics provides Prometheus observability for the Citeline API.
//
// All methods are nil-safe so that services can be constructed without a
// metrics instance in unit tests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// HTTP request latencies by method and route pattern
	RequestLatency *prometheus.HistogramVec

	// Entity operation counts by entity and operation
	EntityOps *prometheus.CounterVec

	// Login outcomes by result ("success", "failure")
	LoginAttempts *prometheus.CounterVec

	// Accounts registered
	UsersRegistered prometheus.Counter
}

// New creates a new Metrics instance with all collectors registered
// on the default Prometheus registry.
func New() *Metrics {
	return &Metrics{
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "citeline_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),

		EntityOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "citeline_entity_operations_total",
			Help: "Total entity operations by entity and operation",
		}, []string{"entity", "op"}), // entity: "person", "organization", "source", "citation"

		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "citeline_login_attempts_total",
			Help: "Total login attempts by outcome",
		}, []string{"result"}),

		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "citeline_users_registered_total",
			Help: "Total number of user accounts registered",
		}),
	}
}

// ObserveRequest records the duration of a finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(method, route).Observe(d.Seconds())
	}
}

// IncrementEntityOp records one entity operation.
func (m *Metrics) IncrementEntityOp(entity, op string) {
	if m != nil {
		m.EntityOps.WithLabelValues(entity, op).Inc()
	}
}

// IncrementLogin records a login attempt outcome.
func (m *Metrics) IncrementLogin(result string) {
	if m != nil {
		m.LoginAttempts.WithLabelValues(result).Inc()
	}
}

// IncrementUsersRegistered increments the registered accounts counter by 1.
func (m *Metrics) IncrementUsersRegistered() {
	if m != nil {
		m.UsersRegistered.Inc()
	}
}
