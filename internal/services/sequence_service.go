package services

import (
	"context"
	"errors"
	"fmt"
)

// CounterStore is the persistence surface for named counters.
type CounterStore interface {
	Increment(ctx context.Context, name string) (int64, error)
}

// SequenceService issues monotonically increasing ids from named counters.
// Uniqueness under concurrent callers is guaranteed by the store's atomic
// increment, not by this service.
type SequenceService struct {
	counterRepo CounterStore
}

func NewSequenceService(counterRepo CounterStore) *SequenceService {
	return &SequenceService{counterRepo: counterRepo}
}

// Next returns the next value of the named sequence, starting at 1 for a
// sequence that has never been used.
func (s *SequenceService) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errors.New("sequence name is required")
	}

	value, err := s.counterRepo.Increment(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("increment sequence %s: %w", name, err)
	}

	return value, nil
}
