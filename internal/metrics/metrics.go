package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bulkmeta"

// BulkMetrics счетчики исходов пакетных действий.
type BulkMetrics struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
}

// New создает метрики в отдельном реестре.
func New() *BulkMetrics {
	reg := prometheus.NewRegistry()
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bulk_item_outcomes_total",
		Help:      "Outcomes of processed bulk action items.",
	}, []string{"action", "outcome"})

	reg.MustRegister(
		outcomes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &BulkMetrics{registry: reg, outcomes: outcomes}
}

// RecordOutcome учитывает исход обработки одной записи.
func (m *BulkMetrics) RecordOutcome(action, outcome string) {
	m.outcomes.WithLabelValues(action, outcome).Inc()
}

// Handler отдает метрики в формате Prometheus.
func (m *BulkMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
