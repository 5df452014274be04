package chat

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repo on the chats collection.
type MongoRepo struct {
	coll *mongo.Collection
}

// NewMongoRepo constructs a MongoRepo.
func NewMongoRepo(coll *mongo.Collection) *MongoRepo {
	return &MongoRepo{coll: coll}
}

// Insert appends one exchange.
func (r *MongoRepo) Insert(ctx context.Context, ex Exchange) error {
	_, err := r.coll.InsertOne(ctx, ex)
	return err
}

// ListRecent returns at most limit exchanges ordered by timestamp descending.
func (r *MongoRepo) ListRecent(ctx context.Context, limit int) ([]Exchange, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []Exchange
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Repo = (*MongoRepo)(nil)
