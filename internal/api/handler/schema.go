package handler

import (
	"time"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// --- Accounts ---

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// loginRequest has no password length cap: legacy digests accept passwords
// longer than bcrypt's 72 bytes.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type meResponse struct {
	Username string `json:"username"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// --- Messages ---

type sendMessageRequest struct {
	To      string `json:"to"      validate:"required"`
	Message string `json:"message" validate:"required,max=4000"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// --- Todos ---

type createTodoRequest struct {
	Task string `json:"task" validate:"required,max=500"`
}

type todoResponse struct {
	ID   string `json:"id"`
	Task string `json:"task"`
	Done bool   `json:"done"`
}

// --- Quotes ---

type createQuoteRequest struct {
	Quote string `json:"quote" validate:"required,max=1000"`
}

type quoteResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"createdAt"`
}

// --- Mappers ---

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = userResponse{ID: u.ID, Username: u.Username}
	}
	return out
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{ID: m.ID, From: m.From, To: m.To, Message: m.Text, CreatedAt: m.CreatedAt.UTC()}
}

func toMessageResponses(msgs []*domain.Message) []messageResponse {
	out := make([]messageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = toMessageResponse(m)
	}
	return out
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{ID: t.ID, Task: t.Text, Done: t.Done}
}

func toTodoResponses(todos []*domain.Todo) []todoResponse {
	out := make([]todoResponse, len(todos))
	for i, t := range todos {
		out[i] = toTodoResponse(t)
	}
	return out
}

func toQuoteResponse(q *domain.Quote) quoteResponse {
	return quoteResponse{ID: q.ID, Username: q.OwnerUsername, Quote: q.Text, CreatedAt: q.CreatedAt.UTC()}
}

func toQuoteResponses(quotes []*domain.Quote) []quoteResponse {
	out := make([]quoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = toQuoteResponse(q)
	}
	return out
}
