package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/entertainmenthub/user-api/internal/domain/entity"
	repo "github.com/entertainmenthub/user-api/internal/domain/repository"
)

// WatchlistService manages the per-user watchlist set. Every method takes
// the resolved identity as an explicit parameter and fails with
// ErrUserNotFound when the subject no longer exists in the store (for
// example, a user deleted after their token was issued).
type WatchlistService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewWatchlistService(r repo.UserRepository, logger *logrus.Logger) *WatchlistService {
	return &WatchlistService{Repo: r, Logger: logger}
}

// AddItem inserts the item into the identity's watchlist. Adding an item
// that is already present is a no-op; the storage layer enforces the
// at-most-one-entry-per-pair invariant atomically.
func (s *WatchlistService) AddItem(ctx context.Context, id Identity, item entity.WatchlistItem) error {
	if err := s.requireUser(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.AddWatchlistItem(ctx, id.UserID, item); err != nil {
		return s.mapNotFound(err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":   id.UserID,
			"item_type": item.ItemType,
			"item_id":   item.ItemID,
		}).Debug("watchlist item added")
	}
	return nil
}

// ListItems returns a snapshot of the identity's watchlist. Order is undefined.
// The user row is checked first: a SELECT matching zero rows cannot tell a
// vanished user apart from an empty watchlist.
func (s *WatchlistService) ListItems(ctx context.Context, id Identity) ([]entity.WatchlistItem, error) {
	if err := s.requireUser(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.Repo.GetWatchlist(ctx, id.UserID)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return items, nil
}

// RemoveItem deletes the matching pair if present. Removing a never-added
// item is a silent no-op, not an error.
func (s *WatchlistService) RemoveItem(ctx context.Context, id Identity, itemType, itemID string) error {
	if err := s.requireUser(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.RemoveWatchlistItem(ctx, id.UserID, itemType, itemID); err != nil {
		return s.mapNotFound(err)
	}
	return nil
}

func (s *WatchlistService) requireUser(ctx context.Context, id Identity) error {
	if _, err := s.Repo.GetByID(ctx, id.UserID); err != nil {
		return s.mapNotFound(err)
	}
	return nil
}

func (s *WatchlistService) mapNotFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
