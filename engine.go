package grpy

import (
	"fmt"

	"github.com/t73fde/grpy/internal/logging"
	"github.com/t73fde/grpy/types"
)

// Snapshot is the assignment state of one grouping: its lifecycle state and,
// when assigned, its partition.
//
// An unassigned grouping has State StateUnassigned and a nil Partition. The
// zero value is a valid unassigned snapshot.
type Snapshot struct {
	// State is the grouping's lifecycle state.
	State types.GroupingState

	// Partition holds the current groups, nil while unassigned.
	Partition *types.Partition
}

// Engine computes and mutates group partitions.
//
// The engine is stateless between invocations: every operation takes the
// current Snapshot as explicit input and returns the next one, so it is safe
// to use one Engine concurrently across different groupings. It performs no
// I/O; the caller is responsible for serializing operations per grouping and
// for persisting results (the Manager does both).
//
// On any error the input snapshot remains the valid state: operations are
// atomic no-ops on rejection.
type Engine struct {
	registry *Registry
	logger   types.Logger
}

// NewEngine creates a new assignment engine.
//
// Parameters:
//   - opts: Optional configuration (WithRegistry, WithLogger); defaults to
//     the built-in policy catalog and a slog logger
//
// Returns:
//   - *Engine: Initialized engine
func NewEngine(opts ...Option) *Engine {
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

	return &Engine{
		registry: options.registry,
		logger:   options.logger,
	}
}

// Registry returns the engine's policy registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Assign computes a new partition for the grouping, replacing any prior one
// wholesale.
//
// Valid from StateUnassigned and StateAssigned; a locked grouping must be
// unlocked (or its groups removed) first. The capacity planner derives the
// group size targets, the grouping's policy distributes the participants,
// and the engine verifies the policy honored the plan before returning.
//
// An empty registration set is not an error: it yields a valid empty
// partition with zero groups.
//
// Parameters:
//   - snap: Current assignment snapshot of the grouping
//   - grouping: Capacity parameters and policy code
//   - registrations: Registered participants; immutable to the engine
//   - seed: Seed for the policy's randomness; equal seeds and inputs
//     reproduce the identical partition
//
// Returns:
//   - Snapshot: StateAssigned with the new partition
//   - error: ErrInvalidState, ErrInvalidConfig, ErrCapacityExceeded,
//     ErrUnknownPolicy, or ErrAssignmentFailed; snap stays valid on error
func (e *Engine) Assign(
	snap Snapshot,
	grouping types.Grouping,
	registrations []types.Registration,
	seed uint64,
) (Snapshot, error) {
	if snap.State != types.StateUnassigned && snap.State != types.StateAssigned {
		return snap, fmt.Errorf("%w: cannot assign in state %s", ErrInvalidState, snap.State)
	}
	if err := grouping.Validate(); err != nil {
		return snap, err
	}
	if err := validateRegistrations(grouping.Key, registrations); err != nil {
		return snap, err
	}

	sizes, err := PlanGroupSizes(len(registrations), grouping.MaxGroupSize, grouping.MemberReserve)
	if err != nil {
		return snap, err
	}

	pol, err := e.registry.Get(grouping.Policy)
	if err != nil {
		return snap, err
	}

	e.logger.Debug("running assignment",
		"grouping", grouping.Key,
		"policy", grouping.Policy,
		"participants", len(registrations),
		"groups", len(sizes),
		"seed", seed)

	memberLists, err := pol.Assign(registrations, sizes, seed)
	if err != nil {
		return snap, fmt.Errorf("%w: policy %s: %w", ErrAssignmentFailed, grouping.Policy, err)
	}
	if err := validatePartition(memberLists, registrations, sizes); err != nil {
		return snap, fmt.Errorf("%w: policy %s: %w", ErrAssignmentFailed, grouping.Policy, err)
	}

	partition := &types.Partition{
		GroupingKey: grouping.Key,
		State:       types.StateAssigned,
		Groups:      make([]types.Group, len(memberLists)),
	}
	for i, members := range memberLists {
		partition.Groups[i] = types.Group{Number: i + 1, Members: members}
	}

	return Snapshot{State: types.StateAssigned, Partition: partition}, nil
}

// RemoveGroups discards the partition, returning the grouping to the
// unassigned state.
//
// Valid from StateAssigned and StateLocked.
//
// Returns:
//   - Snapshot: StateUnassigned with no partition
//   - error: ErrInvalidState if the grouping is unassigned; snap stays valid
func (e *Engine) RemoveGroups(snap Snapshot) (Snapshot, error) {
	if snap.State != types.StateAssigned && snap.State != types.StateLocked {
		return snap, fmt.Errorf("%w: cannot remove groups in state %s", ErrInvalidState, snap.State)
	}

	return Snapshot{State: types.StateUnassigned}, nil
}

// LockReservations fastens the partition: reserve seats are released for
// manual filling by the host. Group membership is untouched.
//
// Valid only from StateAssigned.
//
// Returns:
//   - Snapshot: StateLocked with the unchanged groups
//   - error: ErrInvalidState otherwise; snap stays valid
func (e *Engine) LockReservations(snap Snapshot) (Snapshot, error) {
	if snap.State != types.StateAssigned {
		return snap, fmt.Errorf("%w: cannot lock reservations in state %s", ErrInvalidState, snap.State)
	}
	if snap.Partition == nil {
		return snap, fmt.Errorf("%w: snapshot carries no partition", ErrInvalidState)
	}

	partition := snap.Partition.Clone()
	partition.State = types.StateLocked

	return Snapshot{State: types.StateLocked, Partition: partition}, nil
}

// UnlockReservations reverts LockReservations: reserve seats are held back
// again. Group membership is untouched.
//
// Valid only from StateLocked.
//
// Returns:
//   - Snapshot: StateAssigned with the unchanged groups
//   - error: ErrInvalidState otherwise; snap stays valid
func (e *Engine) UnlockReservations(snap Snapshot) (Snapshot, error) {
	if snap.State != types.StateLocked {
		return snap, fmt.Errorf("%w: cannot unlock reservations in state %s", ErrInvalidState, snap.State)
	}
	if snap.Partition == nil {
		return snap, fmt.Errorf("%w: snapshot carries no partition", ErrInvalidState)
	}

	partition := snap.Partition.Clone()
	partition.State = types.StateAssigned

	return Snapshot{State: types.StateAssigned, Partition: partition}, nil
}

// validateRegistrations rejects registrations of foreign groupings and
// duplicate participants.
func validateRegistrations(key types.GroupingKey, registrations []types.Registration) error {
	seen := make(map[types.UserKey]struct{}, len(registrations))
	for _, reg := range registrations {
		if reg.GroupingKey != key {
			return fmt.Errorf("%w: registration of user %s belongs to grouping %s, not %s",
				ErrInvalidConfig, reg.UserKey, reg.GroupingKey, key)
		}
		if _, ok := seen[reg.UserKey]; ok {
			return fmt.Errorf("%w: duplicate registration for user %s", ErrInvalidConfig, reg.UserKey)
		}
		seen[reg.UserKey] = struct{}{}
	}

	return nil
}

// validatePartition verifies a policy's output against the plan: every
// registrant in exactly one group, no strangers, no target exceeded.
func validatePartition(memberLists [][]types.UserKey, registrations []types.Registration, sizes []int) error {
	if len(memberLists) != len(sizes) {
		return fmt.Errorf("expected %d groups, got %d", len(sizes), len(memberLists))
	}

	registered := make(map[types.UserKey]struct{}, len(registrations))
	for _, reg := range registrations {
		registered[reg.UserKey] = struct{}{}
	}

	placed := make(map[types.UserKey]struct{}, len(registrations))
	for i, members := range memberLists {
		if len(members) > sizes[i] {
			return fmt.Errorf("group %d holds %d members, target is %d", i+1, len(members), sizes[i])
		}
		for _, member := range members {
			if _, ok := registered[member]; !ok {
				return fmt.Errorf("user %s in group %d is not registered", member, i+1)
			}
			if _, ok := placed[member]; ok {
				return fmt.Errorf("user %s placed more than once", member)
			}
			placed[member] = struct{}{}
		}
	}
	if len(placed) != len(registrations) {
		return fmt.Errorf("%d of %d registered users were placed", len(placed), len(registrations))
	}

	return nil
}
