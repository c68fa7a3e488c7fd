package domain

import "time"

// User models a registered account. Users are never updated or deleted once
// created, so the username captured elsewhere (messages, quotes) stays valid.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Identity is the caller resolved by the auth guard.
type Identity struct {
	UserID   string
	Username string
}
