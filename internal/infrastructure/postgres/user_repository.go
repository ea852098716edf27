package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/entertainmenthub/user-api/internal/domain/entity"
	"github.com/entertainmenthub/user-api/internal/domain/repository"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Username, u.PasswordHash)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
}

func (r *UserRepository) getBy(ctx context.Context, query string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// AddWatchlistItem is a single atomic insert; the primary key on
// (user_id, item_type, item_id) makes duplicate adds a no-op. A foreign key
// violation means the user row is gone and surfaces as ErrNotFound, matching
// what the lookup methods report.
func (r *UserRepository) AddWatchlistItem(ctx context.Context, userID string, item entity.WatchlistItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watchlist_items (user_id, item_type, item_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_type, item_id) DO NOTHING
	`, userID, item.ItemType, item.ItemID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *UserRepository) RemoveWatchlistItem(ctx context.Context, userID, itemType, itemID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM watchlist_items
		WHERE user_id = $1 AND item_type = $2 AND item_id = $3
	`, userID, itemType, itemID)
	return err
}

func (r *UserRepository) GetWatchlist(ctx context.Context, userID string) ([]entity.WatchlistItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT item_id, item_type
		FROM watchlist_items
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.WatchlistItem, 0)
	for rows.Next() {
		var it entity.WatchlistItem
		if err := rows.Scan(&it.ItemID, &it.ItemType); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

var _ repository.UserRepository = (*UserRepository)(nil)
