package grpy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/t73fde/grpy/internal/logging"
	"github.com/t73fde/grpy/internal/metrics"
	"github.com/t73fde/grpy/types"
)

// Manager is the host-side façade around the Engine.
//
// It loads a grouping's capacity parameters and registrations from a
// RegistrationSource, feeds them to the Engine, and persists resulting
// partitions in a PartitionStore. Operations on the same grouping are
// serialized through a per-grouping mutex, so at most one assign, remove or
// lock toggle is in flight per grouping at a time; operations on different
// groupings run concurrently.
//
// Either the new partition is fully persisted or the prior one stays
// untouched; the Manager never leaves a half-written state behind.
type Manager struct {
	cfg     Config
	engine  *Engine
	source  types.RegistrationSource
	store   types.PartitionStore
	logger  types.Logger
	metrics types.MetricsCollector

	locks *xsync.Map[types.GroupingKey, *sync.Mutex]
}

// NewManager creates a new Manager.
//
// Parameters:
//   - cfg: Manager configuration; nil applies all defaults
//   - source: Supplies groupings and registrations (required)
//   - store: Persists partitions (required)
//   - opts: Optional configuration (WithRegistry, WithLogger, WithMetrics)
//
// Returns:
//   - *Manager: Initialized manager
//   - error: ErrRegistrationSourceRequired, ErrPartitionStoreRequired, or
//     ErrInvalidConfig for a bad configuration
//
// Example:
//
//	src := source.NewStatic(groupings, registrations)
//	mgr, err := grpy.NewManager(nil, src, memory.NewStore(),
//	    grpy.WithLogger(logger),
//	    grpy.WithMetrics(metrics.NewPrometheus(nil, "grpy")),
//	)
func NewManager(cfg *Config, source types.RegistrationSource, store types.PartitionStore, opts ...Option) (*Manager, error) {
	if source == nil {
		return nil, ErrRegistrationSourceRequired
	}
	if store == nil {
		return nil, ErrPartitionStoreRequired
	}

	config := Config{}
	if cfg != nil {
		config = *cfg
	}
	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := componentOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.registry == nil {
		options.registry = DefaultRegistry()
	}
	if options.logger == nil {
		options.logger = logging.NewSlogDefault()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Manager{
		cfg:     config,
		engine:  NewEngine(WithRegistry(options.registry), WithLogger(options.logger)),
		source:  source,
		store:   store,
		logger:  options.logger,
		metrics: options.metrics,
		locks:   xsync.NewMap[types.GroupingKey, *sync.Mutex](),
	}, nil
}

// Engine returns the underlying assignment engine.
func (m *Manager) Engine() *Engine {
	return m.engine
}

// Assign runs a full assignment for the grouping and persists the result.
//
// Any prior partition is replaced wholesale. The grouping's policy code is
// used, falling back to the configured default when unset.
//
// Parameters:
//   - ctx: Context for the source and store round trips
//   - key: Grouping to assign
//   - seed: Assignment seed; equal seeds over the same registration set
//     reproduce the identical partition
//
// Returns:
//   - *types.Partition: The newly persisted partition
//   - error: Engine errors (see Engine.Assign) or wrapped source/store
//     failures; the prior partition stays in place on any error
func (m *Manager) Assign(ctx context.Context, key types.GroupingKey, seed uint64) (*types.Partition, error) {
	lock := m.groupingLock(key)
	lock.Lock()
	defer lock.Unlock()

	grouping, err := m.source.Grouping(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load grouping %s: %w", key, err)
	}
	if grouping.Policy == "" {
		grouping.Policy = m.cfg.DefaultPolicy
	}

	registrations, err := m.source.ListRegistrations(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations of %s: %w", key, err)
	}

	snap, err := m.loadSnapshot(ctx, key)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	next, err := m.engine.Assign(snap, grouping, registrations, seed)
	if err != nil {
		m.metrics.RecordAssignmentError("assign", errorReason(err))
		m.logger.Warn("assignment rejected", "grouping", key, "error", err)

		return nil, err
	}

	if err := m.savePartition(ctx, next.Partition); err != nil {
		m.metrics.RecordAssignmentError("assign", "other")

		return nil, err
	}

	m.metrics.RecordAssignment(grouping.Policy,
		next.Partition.GroupCount(), next.Partition.MemberCount(),
		time.Since(start).Seconds())
	m.metrics.RecordStateTransition(snap.State, next.State)
	m.logger.Info("groups assigned",
		"grouping", key,
		"policy", grouping.Policy,
		"groups", next.Partition.GroupCount(),
		"participants", next.Partition.MemberCount())

	return next.Partition, nil
}

// RemoveGroups discards the grouping's partition and returns it to the
// unassigned state.
//
// Returns:
//   - error: ErrInvalidState if the grouping is unassigned, or a wrapped
//     store failure
func (m *Manager) RemoveGroups(ctx context.Context, key types.GroupingKey) error {
	lock := m.groupingLock(key)
	lock.Lock()
	defer lock.Unlock()

	snap, err := m.loadSnapshot(ctx, key)
	if err != nil {
		return err
	}

	next, err := m.engine.RemoveGroups(snap)
	if err != nil {
		m.metrics.RecordAssignmentError("remove_groups", errorReason(err))

		return err
	}

	start := time.Now()
	if err := m.store.Delete(ctx, key); err != nil {
		m.metrics.RecordAssignmentError("remove_groups", "other")

		return fmt.Errorf("failed to delete partition of %s: %w", key, err)
	}
	m.metrics.RecordStoreOperation("delete", time.Since(start).Seconds())

	m.metrics.RecordStateTransition(snap.State, next.State)
	m.logger.Info("groups removed", "grouping", key)

	return nil
}

// LockReservations fastens the grouping's partition: reserve seats are
// released for manual filling. Membership is untouched.
//
// Returns:
//   - *types.Partition: The persisted locked partition
//   - error: ErrInvalidState unless the grouping is assigned and unlocked,
//     or a wrapped store failure
func (m *Manager) LockReservations(ctx context.Context, key types.GroupingKey) (*types.Partition, error) {
	return m.toggleReservations(ctx, key, "lock", m.engine.LockReservations)
}

// UnlockReservations reverts LockReservations. Membership is untouched.
//
// Returns:
//   - *types.Partition: The persisted unlocked partition
//   - error: ErrInvalidState unless the grouping is locked, or a wrapped
//     store failure
func (m *Manager) UnlockReservations(ctx context.Context, key types.GroupingKey) (*types.Partition, error) {
	return m.toggleReservations(ctx, key, "unlock", m.engine.UnlockReservations)
}

// Partition returns the stored partition of the grouping.
//
// Returns:
//   - *types.Partition: The stored partition
//   - error: ErrPartitionNotFound if the grouping is unassigned
func (m *Manager) Partition(ctx context.Context, key types.GroupingKey) (*types.Partition, error) {
	return m.store.Load(ctx, key)
}

// State returns the grouping's lifecycle state. An absent partition is the
// unassigned state, not an error.
func (m *Manager) State(ctx context.Context, key types.GroupingKey) (types.GroupingState, error) {
	partition, err := m.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrPartitionNotFound) {
			return types.StateUnassigned, nil
		}

		return types.StateUnassigned, err
	}

	return partition.State, nil
}

// toggleReservations runs one of the lock/unlock transitions and persists
// the result.
func (m *Manager) toggleReservations(
	ctx context.Context,
	key types.GroupingKey,
	operation string,
	transition func(Snapshot) (Snapshot, error),
) (*types.Partition, error) {
	lock := m.groupingLock(key)
	lock.Lock()
	defer lock.Unlock()

	snap, err := m.loadSnapshot(ctx, key)
	if err != nil {
		return nil, err
	}

	next, err := transition(snap)
	if err != nil {
		m.metrics.RecordAssignmentError(operation, errorReason(err))

		return nil, err
	}

	if err := m.savePartition(ctx, next.Partition); err != nil {
		m.metrics.RecordAssignmentError(operation, "other")

		return nil, err
	}

	m.metrics.RecordStateTransition(snap.State, next.State)
	m.logger.Info("reservations toggled", "grouping", key, "state", next.State.String())

	return next.Partition, nil
}

// groupingLock returns the mutex serializing operations on one grouping.
func (m *Manager) groupingLock(key types.GroupingKey) *sync.Mutex {
	lock, _ := m.locks.LoadOrStore(key, &sync.Mutex{})

	return lock
}

// loadSnapshot reads the grouping's current assignment snapshot from the
// store. An absent partition maps to the unassigned snapshot.
func (m *Manager) loadSnapshot(ctx context.Context, key types.GroupingKey) (Snapshot, error) {
	start := time.Now()
	partition, err := m.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrPartitionNotFound) {
			return Snapshot{State: types.StateUnassigned}, nil
		}

		return Snapshot{}, fmt.Errorf("failed to load partition of %s: %w", key, err)
	}
	m.metrics.RecordStoreOperation("load", time.Since(start).Seconds())

	return Snapshot{State: partition.State, Partition: partition}, nil
}

// savePartition persists a partition, timing the store round trip.
func (m *Manager) savePartition(ctx context.Context, partition *types.Partition) error {
	start := time.Now()
	if err := m.store.Save(ctx, partition); err != nil {
		return fmt.Errorf("failed to save partition of %s: %w", partition.GroupingKey, err)
	}
	m.metrics.RecordStoreOperation("save", time.Since(start).Seconds())

	return nil
}

// errorReason classifies an engine error for metrics labels.
func errorReason(err error) string {
	switch {
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrUnknownPolicy):
		return "unknown_policy"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrAssignmentFailed):
		return "assignment_failed"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid_config"
	default:
		return "other"
	}
}
