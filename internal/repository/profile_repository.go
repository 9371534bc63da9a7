package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swagateam/swagabot/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	// GetByUsername returns (nil, nil) when the handle is unknown; absence is
	// not an error at this layer.
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	UpdateAge(ctx context.Context, username string, age int) error
	UpdateGender(ctx context.Context, username string, gender domain.Gender) error
	UpdateDisplayedName(ctx context.Context, username string, name string) error
	UpdateLocation(ctx context.Context, username string, location string) error
	UpdateDescription(ctx context.Context, username string, description string) error
}
