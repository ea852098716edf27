package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds the bcrypt digest of the password, never the plain text.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Watchlist    []WatchlistItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WatchlistItem references a piece of external content saved by a user.
// It is a value type: two items are the same watchlist entry iff both
// ItemID and ItemType match, so the struct must stay comparable.
type WatchlistItem struct {
	ItemID   string `json:"itemId"`
	ItemType string `json:"itemType"` // e.g. "movie", "book", "anime"
}
