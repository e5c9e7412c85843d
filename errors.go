package grpy

import "github.com/t73fde/grpy/types"

// Sentinel errors re-exported from the types subpackage so that callers can
// use errors.Is against grpy.Err* without importing types.
var (
	// ErrInvalidConfig is returned when a configuration or grouping
	// parameter set is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrCapacityExceeded is returned when the registered participants
	// cannot fit even at full maximum size across all planned groups.
	ErrCapacityExceeded = types.ErrCapacityExceeded

	// ErrUnknownPolicy is returned when a policy code has no registry entry.
	ErrUnknownPolicy = types.ErrUnknownPolicy

	// ErrInvalidState is returned when an operation is attempted from a
	// grouping state that forbids it.
	ErrInvalidState = types.ErrInvalidState

	// ErrAssignmentFailed is returned when a policy produced a partition
	// that violates the planned capacities or misplaces participants.
	ErrAssignmentFailed = types.ErrAssignmentFailed

	// ErrRegistrationSourceRequired is returned when the registration
	// source passed to NewManager is nil.
	ErrRegistrationSourceRequired = types.ErrRegistrationSourceRequired

	// ErrPartitionStoreRequired is returned when the partition store passed
	// to NewManager is nil.
	ErrPartitionStoreRequired = types.ErrPartitionStoreRequired

	// ErrGroupingNotFound is returned when no grouping exists for a key.
	ErrGroupingNotFound = types.ErrGroupingNotFound

	// ErrPartitionNotFound is returned when no partition is stored for a
	// grouping.
	ErrPartitionNotFound = types.ErrPartitionNotFound

	// ErrStoreFailed is returned when a store backend operation fails.
	ErrStoreFailed = types.ErrStoreFailed
)
