package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

const messagesCollection = "messages"

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(messagesCollection)}
}

type mongoMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	From      string             `bson:"from"`
	To        string             `bson:"to"`
	Text      string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (m mongoMessage) toDomain() *domain.Message {
	return &domain.Message{
		ID:        m.ID.Hex(),
		From:      m.From,
		To:        m.To,
		Text:      m.Text,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMessage{
		ID:        primitive.NewObjectID(),
		From:      m.From,
		To:        m.To,
		Text:      m.Text,
		CreatedAt: m.CreatedAt.Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return doc.toDomain(), nil
}

// Conversation returns messages a→b and b→a, oldest first. The _id tiebreak
// keeps messages sent within the same millisecond in insertion order.
func (r *MessageRepository) Conversation(ctx context.Context, a, b string) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"from": a, "to": b},
		bson.M{"from": b, "to": a},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}

	var docs []mongoMessage
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}

	msgs := make([]*domain.Message, 0, len(docs))
	for _, d := range docs {
		msgs = append(msgs, d.toDomain())
	}
	return msgs, nil
}

func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}
