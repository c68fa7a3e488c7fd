package ports

import (
	"context"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts the user and returns it with its store-assigned ID.
	// A username collision yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID yields domain.ErrUserNotFound for unknown or malformed IDs.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListExcept returns every user but the one with the given ID, ordered by username.
	ListExcept(ctx context.Context, id string) ([]*domain.User, error)
}
