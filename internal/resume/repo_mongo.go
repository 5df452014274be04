package resume

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repo on a MongoDB collection holding at most one document.
type MongoRepo struct {
	coll *mongo.Collection
}

// NewMongoRepo constructs a MongoRepo.
func NewMongoRepo(coll *mongo.Collection) *MongoRepo {
	return &MongoRepo{coll: coll}
}

// Get returns the single resume document.
func (r *MongoRepo) Get(ctx context.Context) (Resume, error) {
	var doc Resume
	err := r.coll.FindOne(ctx, bson.D{}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return doc, nil
}

// Replace upserts against the empty filter, which keeps the collection at a
// single document.
func (r *MongoRepo) Replace(ctx context.Context, doc Resume) (int64, error) {
	doc.ID = primitive.NilObjectID // omitted on marshal; the server keeps or assigns _id
	res, err := r.coll.ReplaceOne(ctx, bson.D{}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

var _ Repo = (*MongoRepo)(nil)
