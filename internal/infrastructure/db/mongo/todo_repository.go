package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

const todosCollection = "todos"

type TodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{coll: db.Collection(todosCollection)}
}

type mongoTodo struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID string             `bson:"userId"`
	Text    string             `bson:"task"`
	Done    bool               `bson:"done"`
}

func (t mongoTodo) toDomain() *domain.Todo {
	return &domain.Todo{ID: t.ID.Hex(), OwnerID: t.OwnerID, Text: t.Text, Done: t.Done}
}

// toggleDone negates the stored flag server-side, so concurrent toggles
// never read a stale value.
var toggleDone = mongo.Pipeline{
	{{Key: "$set", Value: bson.D{{Key: "done", Value: bson.D{{Key: "$not", Value: bson.A{"$done"}}}}}}},
}

func (r *TodoRepository) Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTodo{ID: primitive.NewObjectID(), OwnerID: t.OwnerID, Text: t.Text, Done: t.Done}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"userId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	var docs []mongoTodo
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	todos := make([]*domain.Todo, 0, len(docs))
	for _, d := range docs {
		todos = append(todos, d.toDomain())
	}
	return todos, nil
}

func (r *TodoRepository) Toggle(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoTodo
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "userId": ownerID}, toggleDone, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("toggle todo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	return deleteOwned(ctx, r.coll, id, ownerID)
}

func (r *TodoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}})
	return err
}

// deleteOwned removes the document with the given hex id when its userId
// matches ownerID. A malformed id matches nothing.
func deleteOwned(ctx context.Context, coll *mongo.Collection, id, ownerID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid, "userId": ownerID})
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}
