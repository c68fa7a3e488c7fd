package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestUserRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("create returns generated id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user, err := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "h"})
		if err != nil {
			mt.Fatalf("create: %v", err)
		}
		if !primitive.IsValidObjectID(user.ID) {
			mt.Fatalf("expected object id, got %q", user.ID)
		}
		if user.Username != "alice" {
			mt.Fatalf("unexpected username %q", user.Username)
		}
	})

	mt.Run("create maps duplicate key to ErrUserExists", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		if _, err := repo.Create(context.Background(), &domain.User{Username: "alice"}); !errors.Is(err, domain.ErrUserExists) {
			mt.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	mt.Run("find by username decodes legacy field names", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "username", Value: "alice"},
			{Key: "password", Value: "digest"},
		}))

		user, err := repo.FindByUsername(context.Background(), "alice")
		if err != nil {
			mt.Fatalf("find: %v", err)
		}
		if user.ID != oid.Hex() || user.PasswordHash != "digest" {
			mt.Fatalf("unexpected user: %+v", user)
		}
	})

	mt.Run("find by username not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch))

		if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("find by malformed id is not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		if _, err := repo.FindByID(context.Background(), "garbage"); !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("list except", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "username", Value: "bob"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "username", Value: "carol"}},
		))

		users, err := repo.ListExcept(context.Background(), primitive.NewObjectID().Hex())
		if err != nil {
			mt.Fatalf("list: %v", err)
		}
		if len(users) != 2 || users[0].Username != "bob" || users[1].Username != "carol" {
			mt.Fatalf("unexpected users: %+v", users)
		}
	})
}

func TestMessageRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("conversation decodes messages", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		sent := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.messages", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "from", Value: "alice"},
				{Key: "to", Value: "bob"},
				{Key: "message", Value: "hi"},
				{Key: "createdAt", Value: sent},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "from", Value: "bob"},
				{Key: "to", Value: "alice"},
				{Key: "message", Value: "hey"},
				{Key: "createdAt", Value: sent.Add(time.Second)},
			},
		))

		msgs, err := repo.Conversation(context.Background(), "alice", "bob")
		if err != nil {
			mt.Fatalf("conversation: %v", err)
		}
		if len(msgs) != 2 {
			mt.Fatalf("expected 2 messages, got %d", len(msgs))
		}
		if msgs[0].Text != "hi" || !msgs[0].CreatedAt.Equal(sent) {
			mt.Fatalf("unexpected first message: %+v", msgs[0])
		}
		if msgs[1].From != "bob" || msgs[1].To != "alice" {
			mt.Fatalf("unexpected second message: %+v", msgs[1])
		}
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		sent := time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC)
		msg, err := repo.Create(context.Background(), &domain.Message{From: "alice", To: "bob", Text: "hi", CreatedAt: sent})
		if err != nil {
			mt.Fatalf("create: %v", err)
		}
		if msg.ID == "" || msg.Text != "hi" {
			mt.Fatalf("unexpected message: %+v", msg)
		}
		// MongoDB keeps milliseconds; the response must match what a later read returns.
		if want := time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.UTC); !msg.CreatedAt.Equal(want) {
			mt.Fatalf("expected createdAt %s, got %s", want, msg.CreatedAt)
		}
	})
}

func TestTodoRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("toggle returns updated todo", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "userId", Value: "owner"},
			{Key: "task", Value: "buy milk"},
			{Key: "done", Value: true},
		}}))

		todo, err := repo.Toggle(context.Background(), oid.Hex(), "owner")
		if err != nil {
			mt.Fatalf("toggle: %v", err)
		}
		if !todo.Done || todo.Text != "buy milk" || todo.ID != oid.Hex() {
			mt.Fatalf("unexpected todo: %+v", todo)
		}
	})

	mt.Run("toggle without match is not found", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		if _, err := repo.Toggle(context.Background(), primitive.NewObjectID().Hex(), "intruder"); !errors.Is(err, domain.ErrTodoNotFound) {
			mt.Fatalf("expected ErrTodoNotFound, got %v", err)
		}
	})

	mt.Run("toggle malformed id is not found", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)

		if _, err := repo.Toggle(context.Background(), "nope", "owner"); !errors.Is(err, domain.ErrTodoNotFound) {
			mt.Fatalf("expected ErrTodoNotFound, got %v", err)
		}
	})

	mt.Run("delete reports whether a todo was removed", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		deleted, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex(), "owner")
		if err != nil || !deleted {
			mt.Fatalf("expected deletion, got %v, %v", deleted, err)
		}
		deleted, err = repo.Delete(context.Background(), primitive.NewObjectID().Hex(), "intruder")
		if err != nil || deleted {
			mt.Fatalf("expected no deletion, got %v, %v", deleted, err)
		}
	})

	mt.Run("list by owner", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.todos", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "userId", Value: "owner"}, {Key: "task", Value: "a"}, {Key: "done", Value: false}},
		))

		todos, err := repo.ListByOwner(context.Background(), "owner")
		if err != nil {
			mt.Fatalf("list: %v", err)
		}
		if len(todos) != 1 || todos[0].Text != "a" || todos[0].OwnerID != "owner" {
			mt.Fatalf("unexpected todos: %+v", todos)
		}
	})
}

func TestQuoteRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("latest decodes quotes", func(mt *mtest.T) {
		repo := NewQuoteRepository(mt.DB)
		now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.quotes", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "userId", Value: "u1"}, {Key: "username", Value: "alice"}, {Key: "quote", Value: "newer"}, {Key: "createdAt", Value: now}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "userId", Value: "u2"}, {Key: "username", Value: "bob"}, {Key: "quote", Value: "older"}, {Key: "createdAt", Value: now.Add(-time.Hour)}},
		))

		quotes, err := repo.Latest(context.Background(), domain.QuoteBoardLimit)
		if err != nil {
			mt.Fatalf("latest: %v", err)
		}
		if len(quotes) != 2 || quotes[0].Text != "newer" || quotes[0].OwnerUsername != "alice" {
			mt.Fatalf("unexpected quotes: %+v", quotes)
		}
	})

	mt.Run("create truncates createdAt to milliseconds", func(mt *mtest.T) {
		repo := NewQuoteRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		posted := time.Date(2024, 5, 1, 10, 0, 0, 987654321, time.UTC)
		quote, err := repo.Create(context.Background(), &domain.Quote{OwnerID: "u1", OwnerUsername: "alice", Text: "carpe diem", CreatedAt: posted})
		if err != nil {
			mt.Fatalf("create: %v", err)
		}
		if want := time.Date(2024, 5, 1, 10, 0, 0, 987000000, time.UTC); !quote.CreatedAt.Equal(want) {
			mt.Fatalf("expected createdAt %s, got %s", want, quote.CreatedAt)
		}
	})

	mt.Run("delete malformed id is a no-op", func(mt *mtest.T) {
		repo := NewQuoteRepository(mt.DB)

		deleted, err := repo.Delete(context.Background(), "not-an-id", "u1")
		if err != nil || deleted {
			mt.Fatalf("expected no-op, got %v, %v", deleted, err)
		}
	})
}
