package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entertainmenthub/user-api/internal/domain/entity"
	"github.com/entertainmenthub/user-api/internal/domain/repository"
	"github.com/entertainmenthub/user-api/internal/infrastructure/memory"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	u := &entity.User{Email: "alice@x.com", Username: "alice", PasswordHash: "digest"}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEmpty(t, u.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	exists, err := repo.ExistsByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByEmail(ctx, "bob@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_CreateEnforcesEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "alice@x.com", Username: "alice", PasswordHash: "digest"}))
	err := repo.Create(ctx, &entity.User{Email: "alice@x.com", Username: "clone", PasswordHash: "digest"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_WatchlistSetSemantics(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	u := &entity.User{Email: "alice@x.com", Username: "alice", PasswordHash: "digest"}
	require.NoError(t, repo.Create(ctx, u))

	item := entity.WatchlistItem{ItemID: "550", ItemType: "movie"}
	require.NoError(t, repo.AddWatchlistItem(ctx, u.ID, item))
	require.NoError(t, repo.AddWatchlistItem(ctx, u.ID, item))

	items, err := repo.GetWatchlist(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, repo.RemoveWatchlistItem(ctx, u.ID, "movie", "550"))
	require.NoError(t, repo.RemoveWatchlistItem(ctx, u.ID, "movie", "550"))

	items, err = repo.GetWatchlist(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUserRepository_WatchlistUnknownUser(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	err := repo.AddWatchlistItem(ctx, "missing", entity.WatchlistItem{ItemID: "1", ItemType: "movie"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetWatchlist(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
