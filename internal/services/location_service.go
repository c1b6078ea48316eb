package services

import (
	"context"
	"fmt"

	"github.com/adrianlim83/person-finder/internal/models"
	"github.com/adrianlim83/person-finder/pkg/logger"
)

// LocationService manages person coordinates and proximity search.
type LocationService struct {
	personRepo   PersonStore
	defaultLimit int
}

func NewLocationService(personRepo PersonStore, defaultLimit int) *LocationService {
	if defaultLimit <= 0 {
		defaultLimit = 1000
	}
	return &LocationService{
		personRepo:   personRepo,
		defaultLimit: defaultLimit,
	}
}

// AddLocation sets or replaces the coordinate of the referenced person.
func (s *LocationService) AddLocation(ctx context.Context, personID int64, latitude, longitude float64) error {
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return err
	}

	person.Location = models.NewGeoPoint(longitude, latitude)

	if err := s.personRepo.Save(ctx, person); err != nil {
		return fmt.Errorf("save location: %w", err)
	}

	logger.Infof("Updated location for person %d", person.ID)
	return nil
}

// RemoveLocation clears the coordinate of the referenced person. Removing a
// location that is already absent succeeds without change.
func (s *LocationService) RemoveLocation(ctx context.Context, personID int64) error {
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return err
	}

	person.Location = nil

	if err := s.personRepo.Save(ctx, person); err != nil {
		return fmt.Errorf("remove location: %w", err)
	}

	logger.Infof("Removed location for person %d", person.ID)
	return nil
}

// FindAround returns the persons located within radiusInKm of the given
// point, closest first, with their distance in kilometers. Persons without a
// stored location never match. A zero radius or an empty area yields an
// empty slice.
func (s *LocationService) FindAround(ctx context.Context, latitude, longitude, radiusInKm float64, page, limit int) ([]models.LocationResult, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	skip := int64(page-1) * int64(limit)

	matches, err := s.personRepo.FindNear(ctx, latitude, longitude, radiusInKm, skip, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("find nearby persons: %w", err)
	}

	results := make([]models.LocationResult, 0, len(matches))
	for _, match := range matches {
		if match.Person.Location == nil {
			continue
		}
		results = append(results, models.LocationResult{
			ReferenceID:  match.Person.ID,
			Latitude:     match.Person.Location.Latitude(),
			Longitude:    match.Person.Location.Longitude(),
			DistanceInKm: match.DistanceMeters / 1000,
			Bio:          match.Person.Bio,
		})
	}

	return results, nil
}
