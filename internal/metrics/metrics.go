// Package metrics records subtraction activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "magsub"

// Metrics owns a private registry so that independent instances (one per
// application run, or per test) never collide on registration.
type Metrics struct {
	registry      *prometheus.Registry
	operations    *prometheus.CounterVec
	underflows    *prometheus.CounterVec
	operandDigits prometheus.Histogram
	batchDuration prometheus.Histogram
}

// NewMetrics creates and registers all collectors, including the Go runtime
// and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Completed subtractions by operation and result sign.",
		}, []string{"op", "sign"}),
		underflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "underflows_total",
			Help:      "Strict subtractions rejected because b > a.",
		}, []string{"op"}),
		operandDigits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operand_digits",
			Help:      "Length in digits of the longer operand.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of batch evaluations.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(
		m.operations,
		m.underflows,
		m.operandDigits,
		m.batchDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveOperation records one completed subtraction.
func (m *Metrics) ObserveOperation(op, sign string, digits int) {
	m.operations.WithLabelValues(op, sign).Inc()
	m.operandDigits.Observe(float64(digits))
}

// ObserveUnderflow records one rejected strict subtraction.
func (m *Metrics) ObserveUnderflow(op string) {
	m.underflows.WithLabelValues(op).Inc()
}

// ObserveBatch records the duration of one batch evaluation.
func (m *Metrics) ObserveBatch(d time.Duration) {
	m.batchDuration.Observe(d.Seconds())
}

// Gatherer exposes the registry for scraping or inspection.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile writes the current metrics in the text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
