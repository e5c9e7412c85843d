package natskv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	grpytest "github.com/t73fde/grpy/testing"
	"github.com/t73fde/grpy/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	_, nc := grpytest.StartEmbeddedNATS(t)
	kv := grpytest.CreateJetStreamKV(t, nc, "grpy-partitions")

	return NewStore(kv, "")
}

func samplePartition(key types.GroupingKey) *types.Partition {
	return &types.Partition{
		GroupingKey: key,
		State:       types.StateAssigned,
		Groups: []types.Group{
			{Number: 1, Members: []types.UserKey{"alice", "bob"}},
			{Number: 2, Members: []types.UserKey{"carol"}},
		},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("load absent partition", func(t *testing.T) {
		_, err := store.Load(ctx, "course-1")
		require.ErrorIs(t, err, types.ErrPartitionNotFound)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, samplePartition("course-1")))

		loaded, err := store.Load(ctx, "course-1")
		require.NoError(t, err)
		require.Equal(t, types.GroupingKey("course-1"), loaded.GroupingKey)
		require.Equal(t, types.StateAssigned, loaded.State)
		require.Equal(t, []types.UserKey{"alice", "bob"}, loaded.Groups[0].Members)
		require.Equal(t, []types.UserKey{"carol"}, loaded.Groups[1].Members)
	})

	t.Run("save replaces wholesale", func(t *testing.T) {
		replacement := &types.Partition{
			GroupingKey: "course-1",
			State:       types.StateLocked,
			Groups:      []types.Group{{Number: 1, Members: []types.UserKey{"dave"}}},
		}
		require.NoError(t, store.Save(ctx, replacement))

		loaded, err := store.Load(ctx, "course-1")
		require.NoError(t, err)
		require.Equal(t, types.StateLocked, loaded.State)
		require.Equal(t, 1, loaded.GroupCount())
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("delete absent partition is not an error", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "course-1"))
	})

	t.Run("delete removes partition", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, samplePartition("course-1")))
		require.NoError(t, store.Delete(ctx, "course-1"))

		_, err := store.Load(ctx, "course-1")
		require.ErrorIs(t, err, types.ErrPartitionNotFound)
	})
}

func TestStore_KeyPrefixIsolation(t *testing.T) {
	ctx := context.Background()

	_, nc := grpytest.StartEmbeddedNATS(t)
	kv := grpytest.CreateJetStreamKV(t, nc, "grpy-partitions")

	primary := NewStore(kv, "primary")
	shadow := NewStore(kv, "shadow")

	require.NoError(t, primary.Save(ctx, samplePartition("course-1")))

	_, err := shadow.Load(ctx, "course-1")
	require.ErrorIs(t, err, types.ErrPartitionNotFound)

	loaded, err := primary.Load(ctx, "course-1")
	require.NoError(t, err)
	require.Equal(t, 2, loaded.GroupCount())
}
