package provisioning

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "azprov"

// Metrics collects run metrics into a private registry that can be written
// as a node-exporter textfile once the run finishes.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	resources  *prometheus.CounterVec
	failures   *prometheus.CounterVec
	operations *prometheus.HistogramVec
	phases     *prometheus.GaugeVec
	lastRun    prometheus.Gauge
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resources: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "resources_total",
			Help:      "Resources handled by ensure steps, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failures_total",
			Help:      "Failed Azure calls, by resource kind.",
		}, []string{"kind"}),
		operations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of Azure calls, by resource kind and operation.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		}, []string{"kind", "operation"}),
		phases: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of the last run of each phase.",
		}, []string{"phase", "result"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the metrics were written.",
		}),
	}
	m.registry.MustRegister(m.resources, m.failures, m.operations, m.phases, m.lastRun)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CountOutcome increments the resource counter.
func (m *Metrics) CountOutcome(kind string, outcome Outcome) {
	if m == nil {
		return
	}
	m.resources.WithLabelValues(kind, string(outcome)).Inc()
}

// CountFailure increments the failure counter.
func (m *Metrics) CountFailure(kind string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(kind).Inc()
}

// ObserveOperation records the duration of one Azure call.
func (m *Metrics) ObserveOperation(kind, operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(kind, operation).Observe(d.Seconds())
}

// ObservePhase records how long a phase took and whether it succeeded.
func (m *Metrics) ObservePhase(phase string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.phases.WithLabelValues(phase, result).Set(d.Seconds())
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	m.lastRun.SetToCurrentTime()
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
