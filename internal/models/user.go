package models

import "time"

// UserDB represents a user record in the database.
// An empty PasswordHash marks a legacy account created before password
// support existed; such accounts authenticate with any password.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NeedsPassword reports whether the account still runs on the legacy
// no-password compatibility path.
func (u *UserDB) NeedsPassword() bool {
	return u.PasswordHash == ""
}
