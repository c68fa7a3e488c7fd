package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hearthapp/hearth-api/internal/core/domain"
	"github.com/hearthapp/hearth-api/internal/core/ports"
	"github.com/hearthapp/hearth-api/internal/infrastructure/tracing"
)

// QuoteService runs the public quote board.
type QuoteService struct {
	repo ports.QuoteRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewQuoteService(repo ports.QuoteRepository, log zerolog.Logger) *QuoteService {
	return &QuoteService{repo: repo, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Board returns the newest quotes, capped at domain.QuoteBoardLimit.
func (s *QuoteService) Board(ctx context.Context) ([]*domain.Quote, error) {
	ctx, span := tracing.StartSpan(ctx, "QuoteService.Board")
	defer span.End()

	quotes, err := s.repo.Latest(ctx, domain.QuoteBoardLimit)
	if err != nil {
		return nil, fmt.Errorf("quote board: %w", err)
	}
	return quotes, nil
}

func (s *QuoteService) Create(ctx context.Context, caller domain.Identity, text string) (*domain.Quote, error) {
	ctx, span := tracing.StartSpan(ctx, "QuoteService.Create")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: quote is required", domain.ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Quote{
		OwnerID:       caller.UserID,
		OwnerUsername: caller.Username,
		Text:          text,
		CreatedAt:     s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	s.log.Info().Str("quote_id", created.ID).Str("username", caller.Username).Msg("quote posted")
	return created, nil
}

// Delete removes one of the caller's quotes; anything else is a silent no-op.
func (s *QuoteService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	ctx, span := tracing.StartSpan(ctx, "QuoteService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id, caller.UserID)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if !deleted {
		s.log.Debug().Str("quote_id", id).Str("user_id", caller.UserID).Msg("delete matched no quote")
	}
	return nil
}
