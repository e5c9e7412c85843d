package policy

import "github.com/t73fde/grpy/types"

// fillGroups distributes an ordered user list over the planned groups,
// filling each group up to its target size in ascending group-number order.
func fillGroups(users []types.UserKey, sizes []int) ([][]types.UserKey, error) {
	total := 0
	for _, size := range sizes {
		total += size
	}
	if total < len(users) {
		return nil, ErrSizeMismatch
	}

	groups := make([][]types.UserKey, len(sizes))
	pos := 0
	for i, size := range sizes {
		end := min(pos+size, len(users))
		groups[i] = append([]types.UserKey{}, users[pos:end]...)
		pos = end
	}

	return groups, nil
}

// userKeys extracts the user keys of the registrations in input order.
func userKeys(registrations []types.Registration) []types.UserKey {
	users := make([]types.UserKey, len(registrations))
	for i, reg := range registrations {
		users[i] = reg.UserKey
	}

	return users
}
