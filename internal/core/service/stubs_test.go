package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

var errStore = errors.New("store unavailable")

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	seq       int
	findErr   error
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.byID {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListExcept(_ context.Context, id string) ([]*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*domain.User
	for _, u := range r.byID {
		if u.ID != id {
			clone := *u
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// plainHasher is a reversible stand-in so tests do not pay for bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(hash, password string) bool { return hash == "hashed:"+password }

// idTokens mirrors the raw-ID token issuer.
type idTokens struct{}

func (idTokens) Issue(user *domain.User) (string, error) { return user.ID, nil }

func (idTokens) Resolve(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", domain.ErrUnauthorized
	}
	return token, nil
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type stubMessageRepo struct {
	messages  []*domain.Message
	createErr error
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *m
	clone.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	r.messages = append(r.messages, &clone)
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) Conversation(_ context.Context, a, b string) ([]*domain.Message, error) {
	out := []*domain.Message{}
	for _, m := range r.messages {
		if (m.From == a && m.To == b) || (m.From == b && m.To == a) {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ---------------------------------------------------------------------------
// Todos
// ---------------------------------------------------------------------------

type stubTodoRepo struct {
	todos []*domain.Todo
	err   error
}

func (r *stubTodoRepo) Create(_ context.Context, t *domain.Todo) (*domain.Todo, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *t
	clone.ID = fmt.Sprintf("todo-%d", len(r.todos)+1)
	r.todos = append(r.todos, &clone)
	out := clone
	return &out, nil
}

func (r *stubTodoRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Todo, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*domain.Todo{}
	for _, t := range r.todos {
		if t.OwnerID == ownerID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTodoRepo) Toggle(_ context.Context, id, ownerID string) (*domain.Todo, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, t := range r.todos {
		if t.ID == id && t.OwnerID == ownerID {
			t.Done = !t.Done
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTodoNotFound
}

func (r *stubTodoRepo) Delete(_ context.Context, id, ownerID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for i, t := range r.todos {
		if t.ID == id && t.OwnerID == ownerID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// Quotes
// ---------------------------------------------------------------------------

type stubQuoteRepo struct {
	quotes    []*domain.Quote
	lastLimit int
	err       error
}

func (r *stubQuoteRepo) Create(_ context.Context, q *domain.Quote) (*domain.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *q
	clone.ID = fmt.Sprintf("quote-%d", len(r.quotes)+1)
	r.quotes = append(r.quotes, &clone)
	out := clone
	return &out, nil
}

func (r *stubQuoteRepo) Latest(_ context.Context, limit int) ([]*domain.Quote, error) {
	r.lastLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		clone := *q
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id, ownerID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for i, q := range r.quotes {
		if q.ID == id && q.OwnerID == ownerID {
			r.quotes = append(r.quotes[:i], r.quotes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
