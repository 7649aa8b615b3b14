package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfbio/natube/pkg/model"
	"github.com/wolfbio/natube/pkg/table"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleSnapshot(name string) Snapshot {
	return Snapshot{
		Name:        name,
		Symmetry:    3,
		TargetRatio: 3.0,
		Auto:        true,
		Rows: []table.Row{
			{Index: 0, Multiplier: 2, Direction: model.UP, Offset: 0},
			{Index: 1, Multiplier: 3, Direction: model.DOWN, Offset: 4},
			{Index: 2, Multiplier: 4, Direction: model.UP, Offset: 0},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, sampleSnapshot("triangle"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Load(ctx, "triangle")
	require.NoError(t, err)

	assert.Equal(t, id, got.UUID)
	assert.Equal(t, 3, got.Symmetry)
	assert.Equal(t, 3.0, got.TargetRatio)
	assert.True(t, got.Auto)
	assert.Equal(t, sampleSnapshot("triangle").Rows, got.Rows)
}

func TestSaveReplacesSameName(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, sampleSnapshot("work"))
	require.NoError(t, err)

	snap := sampleSnapshot("work")
	snap.Symmetry = 7
	_, err = store.Save(ctx, snap)
	require.NoError(t, err)

	got, err := store.Load(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Symmetry)

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestLoadLatestEmptyStore(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadLatest(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, sampleSnapshot("gone"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "gone"))

	_, err = store.Load(ctx, "gone")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "gone"), ErrSnapshotNotFound)
}

func TestSaveValidatesInput(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot("")
	_, err := store.Save(ctx, snap)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)

	snap = sampleSnapshot("ok")
	snap.Rows = nil
	_, err = store.Save(ctx, snap)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}
