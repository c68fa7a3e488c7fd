package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hearthapp/hearth-api/internal/core/domain"
	"github.com/hearthapp/hearth-api/internal/core/ports"
	"github.com/hearthapp/hearth-api/internal/infrastructure/tracing"
)

type messageService struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewMessageService returns a MessageService implementation.
func NewMessageService(messages ports.MessageRepository, users ports.UserRepository, log zerolog.Logger) ports.MessageService {
	return &messageService{
		messages: messages,
		users:    users,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Conversation returns the full history between the caller and peer, oldest first.
func (s *messageService) Conversation(ctx context.Context, caller domain.Identity, peer string) ([]*domain.Message, error) {
	ctx, span := tracing.StartSpan(ctx, "MessageService.Conversation")
	defer span.End()

	msgs, err := s.messages.Conversation(ctx, caller.Username, peer)
	if err != nil {
		return nil, fmt.Errorf("conversation: %w", err)
	}
	return msgs, nil
}

// Send stores a message from the caller. The recipient must exist; its
// username is captured as-is.
func (s *messageService) Send(ctx context.Context, caller domain.Identity, to, text string) (*domain.Message, error) {
	ctx, span := tracing.StartSpan(ctx, "MessageService.Send")
	defer span.End()

	to = strings.TrimSpace(to)
	if to == "" || strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: recipient and message are required", domain.ErrInvalidInput)
	}

	if _, err := s.users.FindByUsername(ctx, to); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("send message: %w", err)
	}

	created, err := s.messages.Create(ctx, &domain.Message{
		From:      caller.Username,
		To:        to,
		Text:      text,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	s.log.Debug().Str("from", caller.Username).Str("to", to).Str("message_id", created.ID).Msg("message sent")
	return created, nil
}
