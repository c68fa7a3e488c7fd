package api

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// In-memory repositories used to drive the full router without MongoDB.

type memUsers struct {
	mu    sync.Mutex
	users []*domain.User
}

func (r *memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	cp := *u
	cp.ID = fmt.Sprintf("%024x", len(r.users)+1)
	r.users = append(r.users, &cp)
	return &cp, nil
}

func (r *memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) ListExcept(_ context.Context, id string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.User{}
	for _, u := range r.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type memMessages struct {
	mu   sync.Mutex
	msgs []*domain.Message
}

func (r *memMessages) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	cp.ID = fmt.Sprintf("m%d", len(r.msgs)+1)
	r.msgs = append(r.msgs, &cp)
	return &cp, nil
}

func (r *memMessages) Conversation(_ context.Context, a, b string) ([]*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Message{}
	for _, m := range r.msgs {
		if (m.From == a && m.To == b) || (m.From == b && m.To == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

type memTodos struct {
	mu    sync.Mutex
	next  int
	todos []*domain.Todo
}

func (r *memTodos) Create(_ context.Context, t *domain.Todo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	cp := *t
	cp.ID = fmt.Sprintf("t%d", r.next)
	r.todos = append(r.todos, &cp)
	return &cp, nil
}

func (r *memTodos) ListByOwner(_ context.Context, ownerID string) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Todo{}
	for _, t := range r.todos {
		if t.OwnerID == ownerID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTodos) Toggle(_ context.Context, id, ownerID string) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.todos {
		if t.ID == id && t.OwnerID == ownerID {
			t.Done = !t.Done
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrTodoNotFound
}

func (r *memTodos) Delete(_ context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.todos {
		if t.ID == id && t.OwnerID == ownerID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memQuotes struct {
	mu     sync.Mutex
	next   int
	quotes []*domain.Quote
}

func (r *memQuotes) Create(_ context.Context, q *domain.Quote) (*domain.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	cp := *q
	cp.ID = fmt.Sprintf("q%d", r.next)
	r.quotes = append(r.quotes, &cp)
	return &cp, nil
}

func (r *memQuotes) Latest(_ context.Context, limit int) ([]*domain.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Quote{}
	for i := len(r.quotes) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.quotes[i])
	}
	return out, nil
}

func (r *memQuotes) Delete(_ context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, q := range r.quotes {
		if q.ID == id && q.OwnerID == ownerID {
			r.quotes = append(r.quotes[:i], r.quotes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
