// Package metrics provides observability counters for the registry's domain
// operations. There is no built-in exposition endpoint; the embedding
// application owns the prometheus registry and decides how to expose it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the domain operations layer.
// All methods are safe to call on a nil receiver, so wiring metrics is
// optional everywhere.
type Metrics struct {
	// Registration outcomes by entity ("citizen", "admin") and result.
	Registrations *prometheus.CounterVec

	// Authentication attempts by kind ("citizen", "admin") and result.
	AuthAttempts *prometheus.CounterVec

	// Rows appended to a table by table name ("aid_history", "messages").
	RowsAppended *prometheus.CounterVec
}

// New creates a Metrics instance with all registry metrics registered on the
// default prometheus registerer.
func New() *Metrics {
	return &Metrics{
		Registrations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aid_registry_registrations_total",
			Help: "Total registration attempts by entity and result",
		}, []string{"entity", "result"}), // result: "ok", "duplicate", "invalid", "error"

		AuthAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aid_registry_auth_attempts_total",
			Help: "Total authentication attempts by kind and result",
		}, []string{"kind", "result"}), // result: "ok", "rejected", "error"

		RowsAppended: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aid_registry_rows_appended_total",
			Help: "Total rows appended to append-only tables",
		}, []string{"table"}),
	}
}

// IncrementRegistration records a registration attempt outcome.
func (m *Metrics) IncrementRegistration(entity, result string) {
	if m != nil {
		m.Registrations.WithLabelValues(entity, result).Inc()
	}
}

// IncrementAuthAttempt records an authentication attempt outcome.
func (m *Metrics) IncrementAuthAttempt(kind, result string) {
	if m != nil {
		m.AuthAttempts.WithLabelValues(kind, result).Inc()
	}
}

// IncrementRowsAppended records a successful append to an append-only table.
func (m *Metrics) IncrementRowsAppended(table string) {
	if m != nil {
		m.RowsAppended.WithLabelValues(table).Inc()
	}
}
