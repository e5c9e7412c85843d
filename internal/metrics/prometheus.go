package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/t73fde/grpy/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	assignments        *prometheus.CounterVec
	assignmentErrors   *prometheus.CounterVec
	assignmentDuration prometheus.Histogram
	groupsGauge        *prometheus.GaugeVec
	participantsGauge  *prometheus.GaugeVec
	stateTransitions   *prometheus.CounterVec
	storeOpDuration    *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "grpy" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "grpy"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.assignments = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "runs_total",
			Help:      "Total successful assignment runs by policy.",
		}, []string{"policy"})

		p.assignmentErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "errors_total",
			Help:      "Total failed engine operations by operation and reason.",
		}, []string{"operation", "reason"})

		p.assignmentDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "duration_seconds",
			Help:      "Duration of assignment runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~4s
		})

		p.groupsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "groups_current",
			Help:      "Group count of the most recent partition by policy.",
		}, []string{"policy"})

		p.participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "participants_current",
			Help:      "Participant count of the most recent partition by policy.",
		}, []string{"policy"})

		p.stateTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "state_transitions_total",
			Help:      "Total grouping state transitions by source and target state.",
		}, []string{"from", "to"})

		p.storeOpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Latency of partition store operations in seconds by operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms .. ~2s
		}, []string{"op"})

		p.reg.MustRegister(p.assignments)
		p.reg.MustRegister(p.assignmentErrors)
		p.reg.MustRegister(p.assignmentDuration)
		p.reg.MustRegister(p.groupsGauge)
		p.reg.MustRegister(p.participantsGauge)
		p.reg.MustRegister(p.stateTransitions)
		p.reg.MustRegister(p.storeOpDuration)
	})
}

// AssignmentMetrics implementation

// RecordAssignment records a successful assignment run.
func (p *PrometheusCollector) RecordAssignment(policy string, groups, participants int, seconds float64) {
	p.ensureRegistered()
	p.assignments.WithLabelValues(policy).Inc()
	p.assignmentDuration.Observe(seconds)
	p.groupsGauge.WithLabelValues(policy).Set(float64(groups))
	p.participantsGauge.WithLabelValues(policy).Set(float64(participants))
}

// RecordAssignmentError records a failed engine operation.
func (p *PrometheusCollector) RecordAssignmentError(operation, reason string) {
	p.ensureRegistered()
	p.assignmentErrors.WithLabelValues(operation, reason).Inc()
}

// RecordStateTransition records a grouping state transition.
func (p *PrometheusCollector) RecordStateTransition(from, to types.GroupingState) {
	p.ensureRegistered()
	p.stateTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

// StoreMetrics implementation

// RecordStoreOperation records the latency of one store operation.
func (p *PrometheusCollector) RecordStoreOperation(op string, seconds float64) {
	p.ensureRegistered()
	p.storeOpDuration.WithLabelValues(op).Observe(seconds)
}
