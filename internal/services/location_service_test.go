package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adrianlim83/person-finder/internal/models"
	"github.com/adrianlim83/person-finder/internal/repositories"
)

func seedPerson(store *fakePersonStore, id int64, email string) *models.Person {
	person := &models.Person{
		ID:       id,
		Name:     "Alice Smith",
		Email:    email,
		JobTitle: "Software Engineer",
		Hobbies:  []string{"reading"},
		Bio:      "Meet Alice!",
	}
	store.persons[id] = person
	return person
}

func TestAddLocation(t *testing.T) {
	t.Run("coordinate stored longitude first", func(t *testing.T) {
		store := newFakePersonStore()
		seedPerson(store, 1, "alice@example.com")
		service := NewLocationService(store, 1000)

		err := service.AddLocation(context.Background(), 1, 1.29, 103.85)

		assert.NoError(t, err)
		location := store.persons[1].Location
		assert.NotNil(t, location)
		assert.Equal(t, "Point", location.Type)
		assert.Equal(t, []float64{103.85, 1.29}, location.Coordinates)
	})

	t.Run("replaces an existing coordinate", func(t *testing.T) {
		store := newFakePersonStore()
		person := seedPerson(store, 1, "alice@example.com")
		person.Location = models.NewGeoPoint(0, 0)
		service := NewLocationService(store, 1000)

		err := service.AddLocation(context.Background(), 1, -33.87, 151.21)

		assert.NoError(t, err)
		assert.Equal(t, []float64{151.21, -33.87}, store.persons[1].Location.Coordinates)
	})

	t.Run("unknown person reported", func(t *testing.T) {
		service := NewLocationService(newFakePersonStore(), 1000)

		err := service.AddLocation(context.Background(), 42, 1.29, 103.85)

		assert.ErrorIs(t, err, repositories.ErrPersonNotFound)
	})
}

func TestRemoveLocation(t *testing.T) {
	t.Run("clears a stored coordinate", func(t *testing.T) {
		store := newFakePersonStore()
		person := seedPerson(store, 1, "alice@example.com")
		person.Location = models.NewGeoPoint(103.85, 1.29)
		service := NewLocationService(store, 1000)

		err := service.RemoveLocation(context.Background(), 1)

		assert.NoError(t, err)
		assert.Nil(t, store.persons[1].Location)
	})

	t.Run("removing an absent coordinate succeeds", func(t *testing.T) {
		store := newFakePersonStore()
		seedPerson(store, 1, "alice@example.com")
		service := NewLocationService(store, 1000)

		err := service.RemoveLocation(context.Background(), 1)

		assert.NoError(t, err)
		assert.Nil(t, store.persons[1].Location)
	})

	t.Run("unknown person reported", func(t *testing.T) {
		service := NewLocationService(newFakePersonStore(), 1000)

		err := service.RemoveLocation(context.Background(), 42)

		assert.ErrorIs(t, err, repositories.ErrPersonNotFound)
	})
}

func TestFindAround(t *testing.T) {
	nearbyMatch := func(id int64, lon, lat, meters float64, bio string) repositories.PersonDistance {
		return repositories.PersonDistance{
			Person: models.Person{
				ID:       id,
				Location: models.NewGeoPoint(lon, lat),
				Bio:      bio,
			},
			DistanceMeters: meters,
		}
	}

	t.Run("matches mapped closest first", func(t *testing.T) {
		store := newFakePersonStore()
		store.near = []repositories.PersonDistance{
			nearbyMatch(1, 103.85, 1.29, 500, "Meet Alice!"),
			nearbyMatch(2, 103.86, 1.30, 2500, "Behold Bob!"),
		}
		service := NewLocationService(store, 1000)

		results, err := service.FindAround(context.Background(), 1.29, 103.85, 10, 1, 100)

		assert.NoError(t, err)
		assert.Len(t, results, 2)
		assert.Equal(t, int64(1), results[0].ReferenceID)
		assert.Equal(t, 1.29, results[0].Latitude)
		assert.Equal(t, 103.85, results[0].Longitude)
		assert.Equal(t, 0.5, results[0].DistanceInKm)
		assert.Equal(t, "Meet Alice!", results[0].Bio)
		assert.Equal(t, int64(2), results[1].ReferenceID)
		assert.Equal(t, 2.5, results[1].DistanceInKm)
	})

	t.Run("query parameters passed to the store", func(t *testing.T) {
		store := newFakePersonStore()
		service := NewLocationService(store, 1000)

		_, err := service.FindAround(context.Background(), -33.87, 151.21, 25, 3, 50)

		assert.NoError(t, err)
		assert.Equal(t, -33.87, store.nearLat)
		assert.Equal(t, 151.21, store.nearLon)
		assert.Equal(t, 25.0, store.nearKm)
		assert.Equal(t, int64(100), store.nearSkip)
		assert.Equal(t, int64(50), store.nearLimit)
	})

	t.Run("page and limit default when absent", func(t *testing.T) {
		store := newFakePersonStore()
		service := NewLocationService(store, 250)

		_, err := service.FindAround(context.Background(), 1.29, 103.85, 10, 0, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), store.nearSkip)
		assert.Equal(t, int64(250), store.nearLimit)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		store := newFakePersonStore()
		service := NewLocationService(store, 1000)

		results, err := service.FindAround(context.Background(), 1.29, 103.85, 0, 1, 10)

		assert.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("store error wrapped", func(t *testing.T) {
		store := newFakePersonStore()
		store.nearErr = errors.New("index missing")
		service := NewLocationService(store, 1000)

		_, err := service.FindAround(context.Background(), 1.29, 103.85, 10, 1, 10)

		assert.ErrorIs(t, err, store.nearErr)
	})
}
