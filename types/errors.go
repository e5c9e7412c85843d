package types

import "errors"

// Sentinel errors for the grpy library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components use these sentinels for known error conditions
// and wrap external errors with context using fmt.Errorf("...: %w", err).

// Engine errors - returned by assignment engine operations.
var (
	// ErrInvalidConfig is returned when a configuration or grouping
	// parameter set is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCapacityExceeded is returned when the registered participants
	// cannot fit even at full maximum size across all planned groups.
	ErrCapacityExceeded = errors.New("participants exceed total group capacity")

	// ErrUnknownPolicy is returned when a policy code has no registry entry.
	ErrUnknownPolicy = errors.New("unknown policy code")

	// ErrInvalidState is returned when an operation is attempted from a
	// grouping state that forbids it. The operation performs no mutation.
	ErrInvalidState = errors.New("operation not valid in current grouping state")

	// ErrAssignmentFailed is returned when a policy produced a partition
	// that violates the planned capacities or misplaces participants.
	ErrAssignmentFailed = errors.New("assignment failed")
)

// Manager errors - returned by the Manager façade.
var (
	// ErrRegistrationSourceRequired is returned when the registration
	// source is nil.
	ErrRegistrationSourceRequired = errors.New("registration source is required")

	// ErrPartitionStoreRequired is returned when the partition store is nil.
	ErrPartitionStoreRequired = errors.New("partition store is required")
)

// Source errors - returned by RegistrationSource implementations.
var (
	// ErrGroupingNotFound is returned when no grouping exists for a key.
	ErrGroupingNotFound = errors.New("no grouping found for key")
)

// Store errors - returned by PartitionStore implementations.
var (
	// ErrPartitionNotFound is returned when no partition is stored for a
	// grouping. This is the expected condition for unassigned groupings.
	ErrPartitionNotFound = errors.New("no partition stored for grouping")

	// ErrStoreFailed is returned when a store backend operation fails.
	ErrStoreFailed = errors.New("partition store operation failed")
)
