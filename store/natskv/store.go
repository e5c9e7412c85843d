// Package natskv provides a types.PartitionStore backed by a NATS JetStream
// key-value bucket.
//
// Each grouping's partition is stored as one JSON record under a prefixed
// key, so partitions survive process restarts and are visible to every
// process bound to the same bucket.
package natskv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/t73fde/grpy/types"
)

// DefaultKeyPrefix is the key prefix used when none is configured.
const DefaultKeyPrefix = "partition"

// Store implements types.PartitionStore on a JetStream KV bucket.
type Store struct {
	kv        jetstream.KeyValue
	keyPrefix string // cached "prefix."
}

var _ types.PartitionStore = (*Store)(nil)

// NewStore creates a partition store on the given KV bucket.
//
// Parameters:
//   - kv: JetStream KV bucket holding the partitions
//   - prefix: Prefix for partition keys (DefaultKeyPrefix if empty)
//
// Returns:
//   - *Store: A store persisting partitions as JSON records
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	kv, _ := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: "grpy-partitions"})
//	store := natskv.NewStore(kv, "")
//	mgr, err := grpy.NewManager(nil, src, store)
func NewStore(kv jetstream.KeyValue, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &Store{
		kv:        kv,
		keyPrefix: fmt.Sprintf("%s.", prefix),
	}
}

// Load returns the stored partition for the grouping.
//
// Returns:
//   - *types.Partition: The decoded partition record
//   - error: types.ErrPartitionNotFound if no record exists,
//     types.ErrStoreFailed (wrapped) on KV or decoding failure
func (s *Store) Load(ctx context.Context, key types.GroupingKey) (*types.Partition, error) {
	entry, err := s.kv.Get(ctx, s.recordKey(key))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, types.ErrPartitionNotFound
		}

		return nil, fmt.Errorf("%w: load %s: %w", types.ErrStoreFailed, key, err)
	}

	var partition types.Partition
	if err := json.Unmarshal(entry.Value(), &partition); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", types.ErrStoreFailed, key, err)
	}

	return &partition, nil
}

// Save stores the partition, replacing any prior record for the same
// grouping.
func (s *Store) Save(ctx context.Context, partition *types.Partition) error {
	data, err := json.Marshal(partition)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", types.ErrStoreFailed, partition.GroupingKey, err)
	}

	if _, err := s.kv.Put(ctx, s.recordKey(partition.GroupingKey), data); err != nil {
		return fmt.Errorf("%w: save %s: %w", types.ErrStoreFailed, partition.GroupingKey, err)
	}

	return nil
}

// Delete removes the stored partition. Deleting an absent partition is not
// an error.
func (s *Store) Delete(ctx context.Context, key types.GroupingKey) error {
	err := s.kv.Delete(ctx, s.recordKey(key))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("%w: delete %s: %w", types.ErrStoreFailed, key, err)
	}

	return nil
}

func (s *Store) recordKey(key types.GroupingKey) string {
	return s.keyPrefix + string(key)
}
