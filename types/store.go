package types

import "context"

// PartitionStore persists the partition of a grouping together with its
// lifecycle state.
//
// A grouping has at most one stored partition; Save replaces it wholesale.
// Absence of a partition is the Unassigned state and is reported via
// ErrPartitionNotFound, not as an empty partition.
//
// Implementations must be safe for concurrent use across groupings. The
// Manager serializes mutations per grouping, so stores do not need
// per-grouping transactional guarantees beyond atomic replace.
type PartitionStore interface {
	// Load returns the stored partition for the grouping.
	//
	// Returns:
	//   - *Partition: A copy the caller may mutate freely
	//   - error: ErrPartitionNotFound if the grouping is unassigned,
	//     ErrStoreFailed (wrapped) on backend failure
	Load(ctx context.Context, key GroupingKey) (*Partition, error)

	// Save stores the partition, replacing any prior one for the same
	// grouping.
	Save(ctx context.Context, partition *Partition) error

	// Delete removes the stored partition, returning the grouping to the
	// unassigned state. Deleting an absent partition is not an error.
	Delete(ctx context.Context, key GroupingKey) error
}
