// Package memory provides an in-memory types.PartitionStore.
//
// Partitions live only as long as the process; the store is meant for tests
// and single-process deployments that do not need persistence. For durable
// storage see the natskv package.
package memory

import (
	"context"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/t73fde/grpy/types"
)

// Store implements types.PartitionStore backed by a concurrent in-process map.
type Store struct {
	partitions *xsync.Map[types.GroupingKey, *types.Partition]
}

var _ types.PartitionStore = (*Store)(nil)

// NewStore creates a new in-memory partition store.
//
// Returns:
//   - *Store: An empty store, safe for concurrent use
//
// Example:
//
//	mgr, err := grpy.NewManager(nil, src, memory.NewStore())
func NewStore() *Store {
	return &Store{
		partitions: xsync.NewMap[types.GroupingKey, *types.Partition](),
	}
}

// Load returns a copy of the stored partition for the grouping.
//
// Returns:
//   - *types.Partition: A deep copy the caller may mutate freely
//   - error: types.ErrPartitionNotFound (wrapped) if the grouping has no
//     stored partition
func (s *Store) Load(_ context.Context, key types.GroupingKey) (*types.Partition, error) {
	partition, ok := s.partitions.Load(key)
	if !ok {
		return nil, types.ErrPartitionNotFound
	}

	return partition.Clone(), nil
}

// Save stores a copy of the partition, replacing any prior one for the same
// grouping.
func (s *Store) Save(_ context.Context, partition *types.Partition) error {
	s.partitions.Store(partition.GroupingKey, partition.Clone())

	return nil
}

// Delete removes the stored partition. Deleting an absent partition is not
// an error.
func (s *Store) Delete(_ context.Context, key types.GroupingKey) error {
	s.partitions.Delete(key)

	return nil
}
