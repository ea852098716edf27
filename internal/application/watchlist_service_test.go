package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entertainmenthub/user-api/internal/application"
	"github.com/entertainmenthub/user-api/internal/domain/entity"
	"github.com/entertainmenthub/user-api/internal/infrastructure/memory"
)

func newWatchlistFixture(t *testing.T) (*application.WatchlistService, *memory.UserRepository, application.Identity) {
	t.Helper()

	repo := memory.NewUserRepository()
	u := &entity.User{Email: "alice@x.com", Username: "alice", PasswordHash: "digest"}
	require.NoError(t, repo.Create(context.Background(), u))

	svc := application.NewWatchlistService(repo, nil)
	id := application.Identity{UserID: u.ID, Email: u.Email, Username: u.Username}
	return svc, repo, id
}

func TestWatchlistService_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newWatchlistFixture(t)

	item := entity.WatchlistItem{ItemID: "550", ItemType: "movie"}
	require.NoError(t, svc.AddItem(ctx, id, item))
	require.NoError(t, svc.AddItem(ctx, id, item))

	items, err := svc.ListItems(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []entity.WatchlistItem{item}, items)
}

func TestWatchlistService_AddKeysOnTypeAndID(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newWatchlistFixture(t)

	// same id, different type: two distinct entries
	require.NoError(t, svc.AddItem(ctx, id, entity.WatchlistItem{ItemID: "550", ItemType: "movie"}))
	require.NoError(t, svc.AddItem(ctx, id, entity.WatchlistItem{ItemID: "550", ItemType: "book"}))

	items, err := svc.ListItems(ctx, id)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestWatchlistService_AddRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newWatchlistFixture(t)

	item := entity.WatchlistItem{ItemID: "550", ItemType: "movie"}
	require.NoError(t, svc.AddItem(ctx, id, item))
	require.NoError(t, svc.RemoveItem(ctx, id, "movie", "550"))

	items, err := svc.ListItems(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWatchlistService_RemoveAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newWatchlistFixture(t)

	require.NoError(t, svc.RemoveItem(ctx, id, "movie", "never-added"))

	require.NoError(t, svc.AddItem(ctx, id, entity.WatchlistItem{ItemID: "1", ItemType: "anime"}))
	require.NoError(t, svc.RemoveItem(ctx, id, "movie", "1"), "type mismatch removes nothing")

	items, err := svc.ListItems(ctx, id)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWatchlistService_VanishedIdentity(t *testing.T) {
	ctx := context.Background()
	svc, repo, id := newWatchlistFixture(t)

	repo.Delete(id.UserID)

	err := svc.AddItem(ctx, id, entity.WatchlistItem{ItemID: "550", ItemType: "movie"})
	assert.ErrorIs(t, err, application.ErrUserNotFound)

	_, err = svc.ListItems(ctx, id)
	assert.ErrorIs(t, err, application.ErrUserNotFound)

	err = svc.RemoveItem(ctx, id, "movie", "550")
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

// rowScopedRepo mimics the SQL store: listing or deleting watchlist rows for
// an unknown user succeeds with nothing found, rather than reporting the
// missing user the way the in-memory store does.
type rowScopedRepo struct {
	*memory.UserRepository
}

func (r *rowScopedRepo) GetWatchlist(ctx context.Context, userID string) ([]entity.WatchlistItem, error) {
	return []entity.WatchlistItem{}, nil
}

func (r *rowScopedRepo) RemoveWatchlistItem(ctx context.Context, userID, itemType, itemID string) error {
	return nil
}

func TestWatchlistService_VanishedIdentity_RowScopedStore(t *testing.T) {
	ctx := context.Background()
	repo := &rowScopedRepo{UserRepository: memory.NewUserRepository()}
	svc := application.NewWatchlistService(repo, nil)
	id := application.Identity{UserID: "gone", Email: "gone@x.com", Username: "gone"}

	// the user row check, not the watchlist query, must report the missing user
	_, err := svc.ListItems(ctx, id)
	assert.ErrorIs(t, err, application.ErrUserNotFound)

	err = svc.RemoveItem(ctx, id, "movie", "550")
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}
