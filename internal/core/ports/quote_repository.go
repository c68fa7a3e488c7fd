package ports

import (
	"context"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// QuoteRepository persists the public quote board.
type QuoteRepository interface {
	Create(ctx context.Context, q *domain.Quote) (*domain.Quote, error)
	// Latest returns up to limit quotes, newest first.
	Latest(ctx context.Context, limit int) ([]*domain.Quote, error)
	// Delete reports whether a quote was removed.
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
