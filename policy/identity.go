package policy

import (
	"slices"

	"github.com/t73fde/grpy/types"
)

// Identity implements the "ID" policy: grouping by user key order.
type Identity struct{}

var _ types.Policy = (*Identity)(nil)

// NewIdentity creates a new identity policy.
//
// The policy sorts participants by their user key and fills the planned
// groups sequentially. It ignores both preferences and the seed, so the
// result depends solely on the registration set. Useful for predictable
// groupings and as a debugging baseline.
//
// Returns:
//   - *Identity: Initialized identity policy
func NewIdentity() *Identity {
	return &Identity{}
}

// Assign distributes registrations over the planned groups in user key order.
//
// Parameters:
//   - registrations: Registered participants (preferences ignored)
//   - sizes: Group size targets from the capacity planner
//   - seed: Ignored
//
// Returns:
//   - [][]types.UserKey: Member lists per planned group
//   - error: ErrSizeMismatch if the targets cannot hold all registrations
func (id *Identity) Assign(registrations []types.Registration, sizes []int, _ uint64) ([][]types.UserKey, error) {
	users := userKeys(registrations)
	slices.Sort(users)

	return fillGroups(users, sizes)
}
