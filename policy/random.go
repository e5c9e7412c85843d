package policy

import (
	"cmp"
	"slices"

	"github.com/zeebo/xxh3"

	"github.com/t73fde/grpy/types"
)

// Random implements the "RD" policy: random distribution.
type Random struct{}

var _ types.Policy = (*Random)(nil)

// NewRandom creates a new random distribution policy.
//
// The policy ignores preferences. It derives a reproducible pseudo-random
// ordering of the registrations from the caller-supplied seed and fills the
// planned groups sequentially, so the same seed and registration set always
// yield the identical partition.
//
// Returns:
//   - *Random: Initialized random distribution policy
func NewRandom() *Random {
	return &Random{}
}

// Assign distributes registrations over the planned groups in seeded
// pseudo-random order.
//
// The ordering key is the seeded xxh3 hash of each user key; hash ties fall
// back to the user key itself, keeping the order total and deterministic.
//
// Parameters:
//   - registrations: Registered participants (preferences ignored)
//   - sizes: Group size targets from the capacity planner
//   - seed: Shuffle seed; different seeds generally produce different orders
//
// Returns:
//   - [][]types.UserKey: Member lists per planned group
//   - error: ErrSizeMismatch if the targets cannot hold all registrations
func (r *Random) Assign(registrations []types.Registration, sizes []int, seed uint64) ([][]types.UserKey, error) {
	users := userKeys(registrations)
	slices.SortFunc(users, func(a, b types.UserKey) int {
		ha := xxh3.HashStringSeed(string(a), seed)
		hb := xxh3.HashStringSeed(string(b), seed)
		if ha != hb {
			return cmp.Compare(ha, hb)
		}

		return cmp.Compare(a, b)
	})

	return fillGroups(users, sizes)
}
