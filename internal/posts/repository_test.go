package posts

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestRepository_IDsAreMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	first := repo.Create(ctx, "Post 1", "Content 1", nil)
	second := repo.Create(ctx, "Post 2", "Content 2", nil)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	_, err := repo.Delete(ctx, 1)
	require.NoError(t, err)

	third := repo.Create(ctx, "Post 3", "Content 3", nil)
	assert.Equal(t, int64(3), third.ID)
}

func TestRepository_IDsRestartWhenEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	repo.Create(ctx, "a", "", nil)
	_, err := repo.Delete(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.Create(ctx, "b", "", nil).ID)
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	created := repo.Create(ctx, "title", "content", int64Ptr(5))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestRepository_ReturnedPostsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	created := repo.Create(ctx, "title", "content", int64Ptr(5))

	*created.UserID = 6

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), *got.UserID)
}

func TestRepository_UpdatePreservesID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	repo.Create(ctx, "old", "old content", int64Ptr(3))

	updated, err := repo.Update(ctx, 1, "new", "new content", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "new content", updated.Content)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, int64(3), *updated.UserID)

	updated, err = repo.Update(ctx, 1, "newer", "", int64Ptr(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), *updated.UserID)

	_, err = repo.Update(ctx, 2, "x", "y", nil)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestRepository_DeleteMissingLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	repo.Create(ctx, "a", "1", nil)
	repo.Create(ctx, "b", "2", nil)
	before := repo.GetAll(ctx)

	_, err := repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.Equal(t, 2, repo.Len())
	assert.Equal(t, before, repo.GetAll(ctx))
}

func TestRepository_DeleteReturnsRemoved(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	repo.Create(ctx, "a", "1", nil)
	repo.Create(ctx, "b", "2", nil)

	removed, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", removed.Title)

	all := repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].ID)
}

func TestRepository_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- repo.Create(ctx, "t", "c", nil).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}
