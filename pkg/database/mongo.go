package database

import (
	"context"
	"log"
	"time"

	"github.com/adrianlim83/person-finder/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	PersonCollection  = "persons"
	CounterCollection = "counters"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Init establishes the MongoDB connection and ensures the indexes the
// service relies on (unique email, 2dsphere location) exist.
func Init() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.Mongo.URI))
	if err != nil {
		return err
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	Client = client
	DB = client.Database(config.AppConfig.Mongo.Database)

	log.Println("MongoDB connected successfully")

	if err := ensureIndexes(ctx); err != nil {
		return err
	}

	return nil
}

// ensureIndexes creates the persons collection indexes. Index creation is
// idempotent and runs on every startup.
func ensureIndexes(ctx context.Context) error {
	persons := DB.Collection(PersonCollection)

	_, err := persons.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
	})
	if err != nil {
		return err
	}

	log.Println("MongoDB indexes ensured")
	return nil
}

// Close disconnects the MongoDB client
func Close() error {
	if Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return Client.Disconnect(ctx)
	}
	return nil
}
