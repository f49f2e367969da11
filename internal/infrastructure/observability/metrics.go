package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the marketplace.
type Metrics struct {
	// Registry owns these metrics; /metrics serves it.
	Registry *prometheus.Registry

	reconciliations   *prometheus.CounterVec
	webhookEvents     *prometheus.CounterVec
	ledgerOperations  *prometheus.CounterVec
	tenderTransitions *prometheus.CounterVec
	notifications     *prometheus.CounterVec
	providerLatency   *prometheus.HistogramVec
}

// NewMetrics creates a dedicated registry so tests can build it repeatedly
// without duplicate-collector panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		reconciliations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "condo_payment_reconciliations_total",
				Help: "Payment ids evaluated by reconciliation, by outcome.",
			},
			[]string{"outcome"},
		),
		webhookEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "condo_webhook_events_total",
				Help: "Webhook notifications received, by event type and result.",
			},
			[]string{"event_type", "result"},
		),
		ledgerOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "condo_ledger_operations_total",
				Help: "Coin ledger operations, by kind and result.",
			},
			[]string{"kind", "result"},
		),
		tenderTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "condo_tender_transitions_total",
				Help: "Tender status transitions, by target status.",
			},
			[]string{"status"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "condo_notifications_total",
				Help: "Notification attempts, by kind and result.",
			},
			[]string{"kind", "result"},
		),
		providerLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "condo_payment_provider_duration_seconds",
				Help:    "Latency of payment provider calls.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// A nil *Metrics is valid and records nothing, which keeps use-case tests free
// of metric plumbing.

func (m *Metrics) RecordReconciliation(outcome string) {
	if m == nil {
		return
	}
	m.reconciliations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordWebhook(eventType, result string) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(eventType, result).Inc()
}

func (m *Metrics) RecordLedger(kind, result string) {
	if m == nil {
		return
	}
	m.ledgerOperations.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) RecordTenderTransition(status string) {
	if m == nil {
		return
	}
	m.tenderTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordNotification(kind, result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) ObserveProvider(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.providerLatency.WithLabelValues(operation).Observe(seconds)
}
