package ports

import "github.com/hearthapp/hearth-api/internal/core/domain"

// TokenIssuer converts between users and the bearer tokens clients replay.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	// Resolve returns the user ID a token stands for, or domain.ErrUnauthorized.
	Resolve(token string) (string, error)
}

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
