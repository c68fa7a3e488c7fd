package ports

import (
	"context"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// MessageRepository persists direct messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	// Conversation returns the messages exchanged between a and b in either
	// direction, oldest first.
	Conversation(ctx context.Context, a, b string) ([]*domain.Message, error)
}
