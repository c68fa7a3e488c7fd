package ports

import (
	"context"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

type MessageService interface {
	Conversation(ctx context.Context, caller domain.Identity, peer string) ([]*domain.Message, error)
	Send(ctx context.Context, caller domain.Identity, to, text string) (*domain.Message, error)
}
