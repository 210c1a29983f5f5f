package models

import "time"

// SharedListDB represents a share link over one user's favorites.
// A nil ExpiresAt means the link never expires. Liveness is evaluated at
// read time; an expired row stays in place until deleted or purged.
type SharedListDB struct {
	ID         int64      `json:"id" db:"id"`
	UserID     int64      `json:"user_id" db:"user_id"`
	ShareToken string     `json:"share_token" db:"share_token"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at" db:"expires_at"`
}

// IsExpired reports whether the link has an expiration in the past.
func (s *SharedListDB) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

// SharedListWithOwnerDB is a share link joined with its owner's username,
// used when resolving a token for public read access.
type SharedListWithOwnerDB struct {
	SharedListDB
	Username string `json:"username" db:"username"`
}
