package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianlim83/person-finder/internal/ai"
	"github.com/adrianlim83/person-finder/internal/models"
	"github.com/adrianlim83/person-finder/internal/repositories"
)

// personSequence names the counter that issues person ids.
const personSequence = "person"

// PersonStore is the persistence surface the person and location services
// depend on.
type PersonStore interface {
	FindByID(ctx context.Context, id int64) (*models.Person, error)
	FindByEmail(ctx context.Context, email string) (*models.Person, error)
	Save(ctx context.Context, person *models.Person) error
	FindNear(ctx context.Context, latitude, longitude, radiusInKm float64, skip, limit int64) ([]repositories.PersonDistance, error)
}

// PersonService handles person profile creation and updates.
type PersonService struct {
	personRepo PersonStore
	sequences  *SequenceService
	sanitizer  *SanitizerService
	bio        ai.BioProvider
}

func NewPersonService(personRepo PersonStore, sequences *SequenceService, sanitizer *SanitizerService, bio ai.BioProvider) *PersonService {
	return &PersonService{
		personRepo: personRepo,
		sequences:  sequences,
		sanitizer:  sanitizer,
		bio:        bio,
	}
}

// GetByID retrieves a person by id
func (s *PersonService) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	return s.personRepo.FindByID(ctx, id)
}

// Save creates or updates a person. A request without an id is matched by
// normalized email and updated in place when a record exists, otherwise
// created under a fresh sequence id. A request with an id must reference an
// existing record. Free-text fields are sanitized before the bio is
// regenerated from the job title and hobbies; name and email never reach the
// bio provider.
func (s *PersonService) Save(ctx context.Context, req *models.PersonRequest) (*models.Person, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := req.NormalizedEmail()

	var person *models.Person
	if req.ID == nil {
		existing, err := s.personRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repositories.ErrPersonNotFound) {
			return nil, fmt.Errorf("find person by email: %w", err)
		}
		if existing != nil {
			person = existing
		} else {
			id, err := s.sequences.Next(ctx, personSequence)
			if err != nil {
				return nil, err
			}
			person = &models.Person{ID: id}
		}
	} else {
		existing, err := s.personRepo.FindByID(ctx, *req.ID)
		if err != nil {
			return nil, err
		}
		person = existing
	}

	person.Name = s.sanitizer.Sanitize(req.Name)
	person.Email = email
	person.JobTitle = s.sanitizer.Sanitize(req.JobTitle)
	person.Hobbies = s.sanitizer.SanitizeList(req.Hobbies)

	bio, err := s.bio.GenerateBio(ctx, person.JobTitle, person.Hobbies)
	if err != nil {
		return nil, fmt.Errorf("generate bio: %w", err)
	}
	person.Bio = bio

	if err := s.personRepo.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("save person: %w", err)
	}

	return person, nil
}
