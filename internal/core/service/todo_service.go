package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hearthapp/hearth-api/internal/core/domain"
	"github.com/hearthapp/hearth-api/internal/core/ports"
	"github.com/hearthapp/hearth-api/internal/infrastructure/tracing"
)

// TodoService manages each user's private todo list.
type TodoService struct {
	repo ports.TodoRepository
	log  zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, log: log}
}

func (s *TodoService) List(ctx context.Context, caller domain.Identity) ([]*domain.Todo, error) {
	ctx, span := tracing.StartSpan(ctx, "TodoService.List")
	defer span.End()

	todos, err := s.repo.ListByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Create adds an open todo for the caller.
func (s *TodoService) Create(ctx context.Context, caller domain.Identity, text string) (*domain.Todo, error) {
	ctx, span := tracing.StartSpan(ctx, "TodoService.Create")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: task is required", domain.ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Todo{OwnerID: caller.UserID, Text: text, Done: false})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return created, nil
}

// Toggle flips the completion flag of one of the caller's todos. Someone
// else's todo is reported as domain.ErrTodoNotFound.
func (s *TodoService) Toggle(ctx context.Context, caller domain.Identity, id string) (*domain.Todo, error) {
	ctx, span := tracing.StartSpan(ctx, "TodoService.Toggle")
	defer span.End()

	todo, err := s.repo.Toggle(ctx, id, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("toggle todo: %w", err)
	}
	return todo, nil
}

// Delete removes one of the caller's todos. Deleting a missing or foreign
// todo succeeds without touching anything.
func (s *TodoService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	ctx, span := tracing.StartSpan(ctx, "TodoService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id, caller.UserID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if !deleted {
		s.log.Debug().Str("todo_id", id).Str("user_id", caller.UserID).Msg("delete matched no todo")
	}
	return nil
}
