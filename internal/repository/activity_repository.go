package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swagateam/swagabot/internal/domain"
)

type ActivityRepository interface {
	// IncrementOrInsert atomically creates the counter with count 1 or bumps
	// it by 1, and returns the pre-increment snapshot: the creating call
	// observes 1, the next calls observe 1, 2, 3, ...
	IncrementOrInsert(ctx context.Context, profileID uuid.UUID) (*domain.ProfileActivity, error)
	// MostActive returns the single highest counter, ties broken by earliest
	// creation. Returns domain.ErrActivityNotFound when no counter exists.
	MostActive(ctx context.Context) (*domain.ProfileActivity, error)
	// ListMostActive returns a ranked page of counters, most active first.
	ListMostActive(ctx context.Context, limit, offset int) ([]*domain.ProfileActivity, error)
}
