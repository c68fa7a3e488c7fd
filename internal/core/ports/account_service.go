package ports

import (
	"context"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token    string
	Username string
}

type AccountService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Authenticate resolves a bearer token to the caller's identity.
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
	// Directory lists every account except the caller's.
	Directory(ctx context.Context, caller domain.Identity) ([]*domain.User, error)
}
