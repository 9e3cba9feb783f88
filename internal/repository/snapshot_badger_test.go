package repository_test

import (
	"context"
	"testing"

	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerSnapshotRepo(t *testing.T) {
	repo, err := repository.NewBadgerSnapshotRepo(repository.InMemoryBadgerConfig())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Load(ctx, snapshotKey)
		assert.ErrorIs(t, err, errorvalues.ErrSnapshotNotFound)
	})
	t.Run("last save wins", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, snapshotKey, []byte(`{"wallet":1}`)))
		require.NoError(t, repo.Save(ctx, snapshotKey, []byte(`{"wallet":2}`)))
		data, err := repo.Load(ctx, snapshotKey)
		require.NoError(t, err)
		assert.Equal(t, `{"wallet":2}`, string(data))
	})
	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, repo.Save(cctx, snapshotKey, []byte(`{}`)), context.Canceled)
	})
}

func TestBadgerSnapshotRepoOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := repository.NewBadgerSnapshotRepo(repository.BadgerConfig{Path: dir, SyncWrites: true})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, snapshotKey, []byte(`{"userName":"Rex"}`)))
	require.NoError(t, repo.Close())

	reopened, err := repository.NewBadgerSnapshotRepo(repository.BadgerConfig{Path: dir})
	require.NoError(t, err)
	defer reopened.Close()
	data, err := reopened.Load(ctx, snapshotKey)
	require.NoError(t, err)
	assert.Equal(t, `{"userName":"Rex"}`, string(data))
}

func TestBadgerRequiresPath(t *testing.T) {
	_, err := repository.NewBadgerSnapshotRepo(repository.BadgerConfig{})
	assert.Error(t, err)
}
