// Package memory provides an in-memory UserRepository used by tests and
// local experiments. The watchlist is a true set keyed on the
// (itemType, itemId) value, matching the storage-level semantics of the
// postgres implementation.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/entertainmenthub/user-api/internal/domain/entity"
	"github.com/entertainmenthub/user-api/internal/domain/repository"
)

type UserRepository struct {
	mu         sync.Mutex
	seq        int
	users      map[string]*entity.User                      // by id
	byEmail    map[string]string                            // email -> id
	watchlists map[string]map[entity.WatchlistItem]struct{} // id -> set
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[string]*entity.User),
		byEmail:    make(map[string]string),
		watchlists: make(map[string]map[entity.WatchlistItem]struct{}),
	}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[u.Email]; taken {
		return repository.ErrDuplicateEmail
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt

	cp := *u
	r.users[u.ID] = &cp
	r.byEmail[u.Email] = u.ID
	r.watchlists[u.ID] = make(map[entity.WatchlistItem]struct{})
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *UserRepository) AddWatchlistItem(_ context.Context, userID string, item entity.WatchlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.watchlists[userID]
	if !ok {
		return repository.ErrNotFound
	}
	set[item] = struct{}{}
	return nil
}

func (r *UserRepository) RemoveWatchlistItem(_ context.Context, userID, itemType, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.watchlists[userID]
	if !ok {
		return repository.ErrNotFound
	}
	delete(set, entity.WatchlistItem{ItemID: itemID, ItemType: itemType})
	return nil
}

func (r *UserRepository) GetWatchlist(_ context.Context, userID string) ([]entity.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.watchlists[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	items := make([]entity.WatchlistItem, 0, len(set))
	for it := range set {
		items = append(items, it)
	}
	return items, nil
}

// Delete removes a user entirely. Tests use it to simulate a valid token
// whose subject has vanished from the store.
func (r *UserRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		delete(r.byEmail, u.Email)
	}
	delete(r.users, id)
	delete(r.watchlists, id)
}

var _ repository.UserRepository = (*UserRepository)(nil)
