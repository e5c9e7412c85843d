package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called concurrently for different groupings and must be
// thread-safe.
//
// This interface composes smaller, domain-focused interfaces so that
// components can depend on just the slice they record.
type MetricsCollector interface {
	AssignmentMetrics
	StoreMetrics
}

// AssignmentMetrics defines metrics for assignment engine operations.
type AssignmentMetrics interface {
	// RecordAssignment records the outcome of one assignment run.
	//
	// Parameters:
	//   - policy: Policy code that produced the partition (e.g. "RD")
	//   - groups: Number of groups in the resulting partition
	//   - participants: Number of assigned participants
	//   - seconds: Duration of the run in seconds
	RecordAssignment(policy string, groups, participants int, seconds float64)

	// RecordAssignmentError records a failed engine operation.
	//
	// Parameters:
	//   - operation: Engine operation ("assign", "remove_groups", "lock", "unlock")
	//   - reason: Failure classification ("capacity_exceeded",
	//     "unknown_policy", "invalid_state", "assignment_failed",
	//     "invalid_config", "other")
	RecordAssignmentError(operation, reason string)

	// RecordStateTransition records a grouping state transition.
	RecordStateTransition(from, to GroupingState)
}

// StoreMetrics defines metrics for partition store operations.
type StoreMetrics interface {
	// RecordStoreOperation records the latency of one store operation.
	//
	// Parameters:
	//   - op: Operation type ("load", "save", "delete")
	//   - seconds: Operation latency in seconds
	RecordStoreOperation(op string, seconds float64)
}
