package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/swagateam/swagabot/internal/domain"
	"github.com/swagateam/swagabot/internal/repository"
)

const (
	MinAge = 18
	MaxAge = 100
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Register creates a profile for a platform user, or returns the existing one
// when the handle is already registered (create-or-fetch).
func (uc *ProfileUseCase) Register(ctx context.Context, userID int64, username string) (*domain.Profile, error) {
	if username == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	profile := domain.NewProfile(userID, username)
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		// Lost a registration race: fetch the row the winner created.
		if errors.Is(err, domain.ErrProfileAlreadyExists) {
			existing, ferr := uc.profileRepo.GetByUsername(ctx, username)
			if ferr == nil && existing != nil {
				return existing, nil
			}
			return nil, err
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// GetByUsername returns the profile for a handle, or (nil, nil) when unknown.
func (uc *ProfileUseCase) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUsername(ctx, username)
}

// GetByID resolves a profile by its id.
func (uc *ProfileUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

// SetAge persists the user's age.
func (uc *ProfileUseCase) SetAge(ctx context.Context, username string, age int) error {
	if age < MinAge || age > MaxAge {
		return domain.ErrInvalidInput
	}
	return uc.profileRepo.UpdateAge(ctx, username, age)
}

// SetGender persists the user's gender.
func (uc *ProfileUseCase) SetGender(ctx context.Context, username string, gender domain.Gender) error {
	return uc.profileRepo.UpdateGender(ctx, username, gender)
}

// SetDisplayedName persists the name shown on the profile card.
func (uc *ProfileUseCase) SetDisplayedName(ctx context.Context, username string, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.profileRepo.UpdateDisplayedName(ctx, username, name)
}

// SetLocation persists the user's location.
func (uc *ProfileUseCase) SetLocation(ctx context.Context, username string, location string) error {
	if location == "" {
		return domain.ErrInvalidInput
	}
	return uc.profileRepo.UpdateLocation(ctx, username, location)
}

// SetDescription persists the free-text profile description.
func (uc *ProfileUseCase) SetDescription(ctx context.Context, username string, description string) error {
	if description == "" {
		return domain.ErrInvalidInput
	}
	return uc.profileRepo.UpdateDescription(ctx, username, description)
}
