package ports

import (
	"context"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// TodoRepository persists owner-scoped todos. Every lookup by ID is also
// filtered by owner, so a foreign todo behaves exactly like a missing one.
type TodoRepository interface {
	Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Todo, error)
	// Toggle flips Done in a single store operation and returns the updated
	// todo, or domain.ErrTodoNotFound when id and owner do not match.
	Toggle(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	// Delete reports whether a todo was removed.
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
