package repositories

import (
	"context"
	"errors"

	"github.com/adrianlim83/person-finder/internal/models"
	"github.com/adrianlim83/person-finder/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPersonNotFound is returned when no person matches the given id or email
var ErrPersonNotFound = errors.New("person not found")

// PersonDistance pairs a matched person with the distance computed by the
// store, in meters.
type PersonDistance struct {
	Person         models.Person `bson:",inline"`
	DistanceMeters float64       `bson:"distance"`
}

type PersonRepository struct {
	collection *mongo.Collection
}

func NewPersonRepository(db *mongo.Database) *PersonRepository {
	return &PersonRepository{collection: db.Collection(database.PersonCollection)}
}

// FindByID retrieves a person by ID
func (r *PersonRepository) FindByID(ctx context.Context, id int64) (*models.Person, error) {
	person := &models.Person{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(person)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return person, nil
}

// FindByEmail retrieves a person by their normalized email
func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	person := &models.Person{}
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(person)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return person, nil
}

// Save upserts the person document under its id
func (r *PersonRepository) Save(ctx context.Context, person *models.Person) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": person.ID}, person, opts)
	return err
}

// FindNear runs a spherical $geoNear search centered on the given point.
// The radius is in kilometers; skip and limit paginate the result, which the
// store returns ordered by distance.
func (r *PersonRepository) FindNear(ctx context.Context, latitude, longitude, radiusInKm float64, skip, limit int64) ([]PersonDistance, error) {
	// $geoNear must be the first pipeline stage and requires the 2dsphere
	// index on the location field.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{longitude, latitude}},
			}},
			{Key: "key", Value: "location"},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: radiusInKm * 1000},
			{Key: "spherical", Value: true},
		}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []PersonDistance
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
