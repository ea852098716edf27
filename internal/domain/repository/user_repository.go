package repository

import (
	"context"
	"errors"

	"github.com/entertainmenthub/user-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the given id or email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create would violate email uniqueness.
	ErrDuplicateEmail = errors.New("email already in use")
)

// UserRepository defines the interface for user-related database operations.
// Watchlist mutations are atomic set operations at the storage layer, so two
// concurrent sessions of the same user cannot lose each other's update.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// AddWatchlistItem inserts the item into the user's watchlist.
	// Adding an item that is already present is a no-op.
	AddWatchlistItem(ctx context.Context, userID string, item entity.WatchlistItem) error
	// RemoveWatchlistItem deletes the matching (itemType, itemId) pair.
	// Removing an absent item is a no-op, not an error.
	RemoveWatchlistItem(ctx context.Context, userID, itemType, itemID string) error
	// GetWatchlist returns a snapshot of the user's watchlist. Order is undefined.
	GetWatchlist(ctx context.Context, userID string) ([]entity.WatchlistItem, error)
}
