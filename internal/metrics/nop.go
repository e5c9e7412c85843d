package metrics

import "github.com/t73fde/grpy/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	mgr, err := grpy.NewManager(cfg, src, store, grpy.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AssignmentMetrics implementation

// RecordAssignment discards the assignment outcome metric.
func (n *NopMetrics) RecordAssignment(_ /* policy */ string, _ /* groups */, _ /* participants */ int, _ /* seconds */ float64) {
	// No-op
}

// RecordAssignmentError discards the assignment error metric.
func (n *NopMetrics) RecordAssignmentError(_ /* operation */, _ /* reason */ string) {
	// No-op
}

// RecordStateTransition discards the state transition metric.
func (n *NopMetrics) RecordStateTransition(_ /* from */, _ /* to */ types.GroupingState) {
	// No-op
}

// StoreMetrics implementation

// RecordStoreOperation discards the store operation latency metric.
func (n *NopMetrics) RecordStoreOperation(_ /* op */ string, _ /* seconds */ float64) {
	// No-op
}
