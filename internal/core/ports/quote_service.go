package ports

import (
	"context"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

type QuoteService interface {
	Board(ctx context.Context) ([]*domain.Quote, error)
	Create(ctx context.Context, caller domain.Identity, text string) (*domain.Quote, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
}
