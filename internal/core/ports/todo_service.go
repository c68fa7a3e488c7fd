package ports

import (
	"context"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

type TodoService interface {
	List(ctx context.Context, caller domain.Identity) ([]*domain.Todo, error)
	Create(ctx context.Context, caller domain.Identity, text string) (*domain.Todo, error)
	Toggle(ctx context.Context, caller domain.Identity, id string) (*domain.Todo, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
}
