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

const quotesCollection = "quotes"

type QuoteRepository struct {
	coll *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{coll: db.Collection(quotesCollection)}
}

type mongoQuote struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID       string             `bson:"userId"`
	OwnerUsername string             `bson:"username"`
	Text          string             `bson:"quote"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func (q mongoQuote) toDomain() *domain.Quote {
	return &domain.Quote{
		ID:            q.ID.Hex(),
		OwnerID:       q.OwnerID,
		OwnerUsername: q.OwnerUsername,
		Text:          q.Text,
		CreatedAt:     q.CreatedAt.UTC(),
	}
}

func (r *QuoteRepository) Create(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoQuote{
		ID:            primitive.NewObjectID(),
		OwnerID:       q.OwnerID,
		OwnerUsername: q.OwnerUsername,
		Text:          q.Text,
		CreatedAt:     q.CreatedAt.Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert quote: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *QuoteRepository) Latest(ctx context.Context, limit int) ([]*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	var docs []mongoQuote
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	quotes := make([]*domain.Quote, 0, len(docs))
	for _, d := range docs {
		quotes = append(quotes, d.toDomain())
	}
	return quotes, nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	return deleteOwned(ctx, r.coll, id, ownerID)
}

func (r *QuoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}})
	return err
}
