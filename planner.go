package grpy

import "fmt"

// PlanGroupSizes computes the group size targets for an assignment run.
//
// The planner reserves memberReserve seats per group: the effective capacity
// of a group is maxGroupSize - memberReserve, and the group count is the
// smallest number of groups whose effective capacity covers all
// participants. The participants are then split evenly over those groups,
// earliest-numbered groups taking the remainder, so sizes differ by at most
// one. A group only eats into its reserve when the participant count forces
// it, and never exceeds maxGroupSize.
//
// Parameters:
//   - participants: Number of registered participants (>= 0)
//   - maxGroupSize: Hard upper bound on group size (>= 1)
//   - memberReserve: Seats per group kept free for manual additions (>= 0)
//
// Returns:
//   - []int: Target size per group, ascending group-number order; empty for
//     zero participants (an empty plan is valid, not an error)
//   - error: ErrInvalidConfig for out-of-range parameters,
//     ErrCapacityExceeded when the reserve leaves no usable capacity or the
//     participants cannot fit at full maxGroupSize per group
func PlanGroupSizes(participants, maxGroupSize, memberReserve int) ([]int, error) {
	if participants < 0 {
		return nil, fmt.Errorf("%w: participant count must be >= 0, got %d", ErrInvalidConfig, participants)
	}
	if maxGroupSize < 1 {
		return nil, fmt.Errorf("%w: max group size must be >= 1, got %d", ErrInvalidConfig, maxGroupSize)
	}
	if memberReserve < 0 {
		return nil, fmt.Errorf("%w: member reserve must be >= 0, got %d", ErrInvalidConfig, memberReserve)
	}
	if participants == 0 {
		return []int{}, nil
	}

	effective := maxGroupSize - memberReserve
	if effective < 1 {
		return nil, fmt.Errorf("%w: member reserve %d leaves no usable capacity in groups of %d",
			ErrCapacityExceeded, memberReserve, maxGroupSize)
	}

	groupCount := (participants + effective - 1) / effective
	base := participants / groupCount
	remainder := participants % groupCount

	sizes := make([]int, groupCount)
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
		// Cannot trigger for valid inputs; guards the planner invariant
		// against future formula changes.
		if sizes[i] > maxGroupSize {
			return nil, fmt.Errorf("%w: %d participants do not fit into %d groups of at most %d",
				ErrCapacityExceeded, participants, groupCount, maxGroupSize)
		}
	}

	return sizes, nil
}
