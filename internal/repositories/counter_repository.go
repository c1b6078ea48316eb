package repositories

import (
	"context"

	"github.com/adrianlim83/person-finder/internal/models"
	"github.com/adrianlim83/person-finder/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CounterRepository struct {
	collection *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{collection: db.Collection(database.CounterCollection)}
}

// Increment atomically increments the named counter and returns the new
// value. The upsert creates the counter on first use, so the first call for
// a name returns 1. Concurrent callers are serialized by the store's atomic
// single-document update.
func (r *CounterRepository) Increment(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	counter := &models.Counter{}
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}
