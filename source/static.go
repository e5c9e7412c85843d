package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/t73fde/grpy/types"
)

// Static implements a registration source with fixed groupings and
// registrations.
type Static struct {
	mu            sync.RWMutex
	groupings     map[types.GroupingKey]types.Grouping
	registrations map[types.GroupingKey][]types.Registration
}

var _ types.RegistrationSource = (*Static)(nil)

// NewStatic creates a new static registration source.
//
// The source returns fixed groupings and registrations that never change
// unless Update is called. Useful for testing and scenarios where the
// registration data is known at startup.
//
// Parameters:
//   - groupings: Fixed list of groupings
//   - registrations: Fixed list of registrations, matched to groupings by key
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	groupings := []types.Grouping{
//	    {Key: "course-1", Name: "Course 1", MaxGroupSize: 6, Policy: "RD"},
//	}
//	registrations := []types.Registration{
//	    {GroupingKey: "course-1", UserKey: "alice"},
//	    {GroupingKey: "course-1", UserKey: "bob"},
//	}
//	src := source.NewStatic(groupings, registrations)
//	mgr, err := grpy.NewManager(nil, src, memory.NewStore())
//	if err != nil { /* handle */ }
func NewStatic(groupings []types.Grouping, registrations []types.Registration) *Static {
	s := &Static{}
	s.set(groupings, registrations)

	return s
}

// Grouping returns the grouping identified by key.
//
// Returns:
//   - types.Grouping: The grouping's configured parameters
//   - error: types.ErrGroupingNotFound (wrapped) if no grouping with the
//     given key exists
func (s *Static) Grouping(_ context.Context, key types.GroupingKey) (types.Grouping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouping, ok := s.groupings[key]
	if !ok {
		return types.Grouping{}, fmt.Errorf("%w: %s", types.ErrGroupingNotFound, key)
	}

	return grouping, nil
}

// ListRegistrations returns the registrations of the grouping in insertion
// order.
//
// Returns:
//   - []types.Registration: Registered participants (possibly empty)
//   - error: Always nil (never fails)
func (s *Static) ListRegistrations(_ context.Context, key types.GroupingKey) ([]types.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	regs := s.registrations[key]
	result := make([]types.Registration, len(regs))
	copy(result, regs)

	return result, nil
}

// Update replaces the groupings and registrations.
//
// This allows the static source to simulate changing registration data,
// which is useful for testing reassignment scenarios.
//
// Parameters:
//   - groupings: New list of groupings
//   - registrations: New list of registrations
//
// Example:
//
//	src := source.NewStatic(groupings, initialRegistrations)
//	// Later: a new participant registered
//	src.Update(groupings, expandedRegistrations)
func (s *Static) Update(groupings []types.Grouping, registrations []types.Registration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(groupings, registrations)
}

func (s *Static) set(groupings []types.Grouping, registrations []types.Registration) {
	s.groupings = make(map[types.GroupingKey]types.Grouping, len(groupings))
	for _, grouping := range groupings {
		s.groupings[grouping.Key] = grouping
	}

	s.registrations = make(map[types.GroupingKey][]types.Registration)
	for _, reg := range registrations {
		s.registrations[reg.GroupingKey] = append(s.registrations[reg.GroupingKey], reg)
	}
}
