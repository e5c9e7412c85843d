package policy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t73fde/grpy/types"
)

func makeRegistrations(n int) []types.Registration {
	regs := make([]types.Registration, n)
	for i := range regs {
		regs[i] = types.Registration{
			GroupingKey: "course-1",
			UserKey:     types.UserKey(fmt.Sprintf("user-%02d", i)),
		}
	}

	return regs
}

func allMembers(t *testing.T, groups [][]types.UserKey) map[types.UserKey]int {
	t.Helper()

	seen := make(map[types.UserKey]int)
	for _, group := range groups {
		for _, member := range group {
			seen[member]++
		}
	}

	return seen
}

func requireValidPartition(t *testing.T, groups [][]types.UserKey, regs []types.Registration, sizes []int) {
	t.Helper()

	require.Len(t, groups, len(sizes))
	for i, group := range groups {
		require.LessOrEqual(t, len(group), sizes[i], "group %d exceeds its target size", i+1)
	}

	seen := allMembers(t, groups)
	require.Len(t, seen, len(regs))
	for _, reg := range regs {
		require.Equal(t, 1, seen[reg.UserKey], "user %s must appear exactly once", reg.UserKey)
	}
}

func TestRandom_Assign(t *testing.T) {
	t.Run("places every user exactly once", func(t *testing.T) {
		regs := makeRegistrations(13)
		sizes := []int{5, 4, 4}

		groups, err := NewRandom().Assign(regs, sizes, 1)

		require.NoError(t, err)
		requireValidPartition(t, groups, regs, sizes)
	})

	t.Run("same seed reproduces the identical partition", func(t *testing.T) {
		regs := makeRegistrations(20)
		sizes := []int{7, 7, 6}

		first, err := NewRandom().Assign(regs, sizes, 42)
		require.NoError(t, err)
		second, err := NewRandom().Assign(regs, sizes, 42)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("different seeds produce different partitions", func(t *testing.T) {
		regs := makeRegistrations(20)
		sizes := []int{7, 7, 6}

		first, err := NewRandom().Assign(regs, sizes, 1)
		require.NoError(t, err)
		second, err := NewRandom().Assign(regs, sizes, 2)
		require.NoError(t, err)

		require.NotEqual(t, first, second)
	})

	t.Run("handles empty registration set", func(t *testing.T) {
		groups, err := NewRandom().Assign(nil, nil, 7)

		require.NoError(t, err)
		require.Empty(t, groups)
	})

	t.Run("leaves trailing seats empty when users run out", func(t *testing.T) {
		regs := makeRegistrations(5)
		sizes := []int{4, 4}

		groups, err := NewRandom().Assign(regs, sizes, 3)

		require.NoError(t, err)
		requireValidPartition(t, groups, regs, sizes)
		require.Len(t, groups[0], 4)
		require.Len(t, groups[1], 1)
	})

	t.Run("rejects targets that cannot hold all users", func(t *testing.T) {
		regs := makeRegistrations(5)

		_, err := NewRandom().Assign(regs, []int{2, 2}, 1)

		require.ErrorIs(t, err, ErrSizeMismatch)
	})
}
