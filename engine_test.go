package grpy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t73fde/grpy/types"
)

func makeGrouping(max, reserve int, policyCode string) types.Grouping {
	return types.Grouping{
		Key:           "course-1",
		Name:          "Course 1",
		MaxGroupSize:  max,
		MemberReserve: reserve,
		Policy:        policyCode,
	}
}

func makeRegistrations(key types.GroupingKey, count int) []types.Registration {
	regs := make([]types.Registration, count)
	for i := range regs {
		regs[i] = types.Registration{
			GroupingKey: key,
			UserKey:     types.UserKey(fmt.Sprintf("user%02d", i)),
		}
	}

	return regs
}

func groupSizes(partition *types.Partition) []int {
	sizes := make([]int, 0, partition.GroupCount())
	for _, g := range partition.Groups {
		sizes = append(sizes, g.Size())
	}

	return sizes
}

func TestEngine_Assign(t *testing.T) {
	engine := NewEngine()

	t.Run("uneven split favors earliest groups", func(t *testing.T) {
		grouping := makeGrouping(6, 0, "RD")
		regs := makeRegistrations(grouping.Key, 13)

		snap, err := engine.Assign(Snapshot{}, grouping, regs, 1)
		require.NoError(t, err)
		require.Equal(t, types.StateAssigned, snap.State)
		require.Equal(t, []int{5, 4, 4}, groupSizes(snap.Partition))

		// Every registrant lands in exactly one group.
		require.ElementsMatch(t, userKeysOf(regs), snap.Partition.Members())
	})

	t.Run("reserve widens the group count", func(t *testing.T) {
		grouping := makeGrouping(6, 2, "RD")
		regs := makeRegistrations(grouping.Key, 9)

		snap, err := engine.Assign(Snapshot{}, grouping, regs, 1)
		require.NoError(t, err)
		require.Equal(t, 3, snap.Partition.GroupCount())
		require.Equal(t, []int{3, 3, 3}, groupSizes(snap.Partition))
	})

	t.Run("empty registration set yields empty partition", func(t *testing.T) {
		grouping := makeGrouping(4, 0, "RD")

		snap, err := engine.Assign(Snapshot{}, grouping, nil, 1)
		require.NoError(t, err)
		require.Equal(t, types.StateAssigned, snap.State)
		require.Equal(t, 0, snap.Partition.GroupCount())
		require.Equal(t, 0, snap.Partition.MemberCount())
	})

	t.Run("group numbers are dense and one-based", func(t *testing.T) {
		grouping := makeGrouping(3, 0, "ID")
		regs := makeRegistrations(grouping.Key, 8)

		snap, err := engine.Assign(Snapshot{}, grouping, regs, 1)
		require.NoError(t, err)
		for i, g := range snap.Partition.Groups {
			require.Equal(t, i+1, g.Number)
		}
	})

	t.Run("same seed reproduces the partition", func(t *testing.T) {
		grouping := makeGrouping(4, 0, "RD")
		regs := makeRegistrations(grouping.Key, 11)

		first, err := engine.Assign(Snapshot{}, grouping, regs, 99)
		require.NoError(t, err)
		second, err := engine.Assign(Snapshot{}, grouping, regs, 99)
		require.NoError(t, err)

		require.Equal(t, first.Partition.Groups, second.Partition.Groups)
	})

	t.Run("reassignment replaces the partition wholesale", func(t *testing.T) {
		grouping := makeGrouping(4, 0, "RD")
		regs := makeRegistrations(grouping.Key, 11)

		snap, err := engine.Assign(Snapshot{}, grouping, regs, 1)
		require.NoError(t, err)

		next, err := engine.Assign(snap, grouping, regs, 2)
		require.NoError(t, err)
		require.Equal(t, types.StateAssigned, next.State)
		require.NotEqual(t, snap.Partition.Groups, next.Partition.Groups)
	})
}

func TestEngine_Assign_Errors(t *testing.T) {
	engine := NewEngine()
	grouping := makeGrouping(6, 0, "RD")
	regs := makeRegistrations(grouping.Key, 5)

	t.Run("unknown policy", func(t *testing.T) {
		bad := makeGrouping(6, 0, "XX")

		snap, err := engine.Assign(Snapshot{}, bad, regs, 1)
		require.ErrorIs(t, err, ErrUnknownPolicy)
		require.Equal(t, Snapshot{}, snap)
	})

	t.Run("invalid grouping config", func(t *testing.T) {
		bad := makeGrouping(4, 4, "RD")

		_, err := engine.Assign(Snapshot{}, bad, regs, 1)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("registration of foreign grouping", func(t *testing.T) {
		foreign := append([]types.Registration{}, regs...)
		foreign[2].GroupingKey = "course-2"

		_, err := engine.Assign(Snapshot{}, grouping, foreign, 1)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		dupes := append([]types.Registration{}, regs...)
		dupes[3].UserKey = dupes[0].UserKey

		_, err := engine.Assign(Snapshot{}, grouping, dupes, 1)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("locked grouping rejects assignment", func(t *testing.T) {
		snap, err := engine.Assign(Snapshot{}, grouping, regs, 1)
		require.NoError(t, err)
		locked, err := engine.LockReservations(snap)
		require.NoError(t, err)

		rejected, err := engine.Assign(locked, grouping, regs, 2)
		require.ErrorIs(t, err, ErrInvalidState)
		// The input snapshot stays the valid state.
		require.Equal(t, locked, rejected)
	})
}

func TestEngine_RemoveGroups(t *testing.T) {
	engine := NewEngine()
	grouping := makeGrouping(4, 0, "RD")
	regs := makeRegistrations(grouping.Key, 7)

	t.Run("from assigned", func(t *testing.T) {
		snap, err := engine.Assign(Snapshot{}, grouping, regs, 1)
		require.NoError(t, err)

		next, err := engine.RemoveGroups(snap)
		require.NoError(t, err)
		require.Equal(t, types.StateUnassigned, next.State)
		require.Nil(t, next.Partition)
	})

	t.Run("from locked", func(t *testing.T) {
		snap, err := engine.Assign(Snapshot{}, grouping, regs, 1)
		require.NoError(t, err)
		locked, err := engine.LockReservations(snap)
		require.NoError(t, err)

		next, err := engine.RemoveGroups(locked)
		require.NoError(t, err)
		require.Equal(t, types.StateUnassigned, next.State)
	})

	t.Run("from unassigned is rejected", func(t *testing.T) {
		snap, err := engine.RemoveGroups(Snapshot{})
		require.ErrorIs(t, err, ErrInvalidState)
		require.Equal(t, Snapshot{}, snap)
	})
}

func TestEngine_LockUnlockReservations(t *testing.T) {
	engine := NewEngine()
	grouping := makeGrouping(4, 1, "RD")
	regs := makeRegistrations(grouping.Key, 7)

	assigned, err := engine.Assign(Snapshot{}, grouping, regs, 1)
	require.NoError(t, err)

	t.Run("lock and unlock keep membership", func(t *testing.T) {
		locked, err := engine.LockReservations(assigned)
		require.NoError(t, err)
		require.Equal(t, types.StateLocked, locked.State)
		require.Equal(t, types.StateLocked, locked.Partition.State)
		require.Equal(t, assigned.Partition.Groups, locked.Partition.Groups)

		unlocked, err := engine.UnlockReservations(locked)
		require.NoError(t, err)
		require.Equal(t, types.StateAssigned, unlocked.State)
		require.Equal(t, assigned.Partition.Groups, unlocked.Partition.Groups)
	})

	t.Run("lock requires assigned state", func(t *testing.T) {
		_, err := engine.LockReservations(Snapshot{})
		require.ErrorIs(t, err, ErrInvalidState)

		locked, err := engine.LockReservations(assigned)
		require.NoError(t, err)
		_, err = engine.LockReservations(locked)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unlock requires locked state", func(t *testing.T) {
		_, err := engine.UnlockReservations(Snapshot{})
		require.ErrorIs(t, err, ErrInvalidState)

		_, err = engine.UnlockReservations(assigned)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("snapshot without partition is rejected", func(t *testing.T) {
		broken := Snapshot{State: types.StateAssigned}

		next, err := engine.LockReservations(broken)
		require.ErrorIs(t, err, ErrInvalidState)
		require.Equal(t, broken, next)

		broken.State = types.StateLocked
		next, err = engine.UnlockReservations(broken)
		require.ErrorIs(t, err, ErrInvalidState)
		require.Equal(t, broken, next)
	})

	t.Run("lock does not mutate the input snapshot", func(t *testing.T) {
		_, err := engine.LockReservations(assigned)
		require.NoError(t, err)
		require.Equal(t, types.StateAssigned, assigned.Partition.State)
	})
}

func userKeysOf(regs []types.Registration) []types.UserKey {
	keys := make([]types.UserKey, len(regs))
	for i, reg := range regs {
		keys[i] = reg.UserKey
	}

	return keys
}
