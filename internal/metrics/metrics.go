// Package metrics exposes Prometheus counters for registration and check-in outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus collectors.
type Metrics struct {
	EventsCreated  prometheus.Counter
	Registrations  prometheus.Counter
	CheckIns       prometheus.Counter
	RuleRejections *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Passing nil registers with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		EventsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventcheckin_events_created_total",
			Help: "Total number of events created",
		}),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventcheckin_registrations_total",
			Help: "Total number of successful attendee registrations",
		}),
		CheckIns: factory.NewCounter(prometheus.CounterOpts{
			Name: "eventcheckin_check_ins_total",
			Help: "Total number of successful attendee check-ins",
		}),
		RuleRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eventcheckin_rule_rejections_total",
			Help: "Requests rejected by a business rule, by operation and failure kind",
		}, []string{"operation", "kind"}),
	}
}

// IncrementEventsCreated records a successful event creation.
func (m *Metrics) IncrementEventsCreated() {
	m.EventsCreated.Inc()
}

// IncrementRegistrations records a successful registration.
func (m *Metrics) IncrementRegistrations() {
	m.Registrations.Inc()
}

// IncrementCheckIns records a successful check-in.
func (m *Metrics) IncrementCheckIns() {
	m.CheckIns.Inc()
}

// IncrementRejection records an operation refused by a business rule.
func (m *Metrics) IncrementRejection(operation, kind string) {
	m.RuleRejections.WithLabelValues(operation, kind).Inc()
}
