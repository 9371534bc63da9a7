package like

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/swagateam/swagabot/internal/domain"
	"github.com/swagateam/swagabot/internal/repository"
)

type LikeUseCase struct {
	likeRepo    repository.LikeRepository
	profileRepo repository.ProfileRepository
}

func NewLikeUseCase(
	likeRepo repository.LikeRepository,
	profileRepo repository.ProfileRepository,
) *LikeUseCase {
	return &LikeUseCase{
		likeRepo:    likeRepo,
		profileRepo: profileRepo,
	}
}

// LikeResult reports the outcome of a like.
type LikeResult struct {
	IsMatch bool
	Matched *domain.Profile
}

// Like records a like from viewer to candidate and reports whether the
// candidate had already liked the viewer back. Repeat likes for the same pair
// are tolerated; self-likes are rejected.
func (uc *LikeUseCase) Like(ctx context.Context, viewerID, profileID uuid.UUID, super bool) (*LikeResult, error) {
	if viewerID == profileID {
		return nil, domain.ErrInvalidInput
	}

	l := &domain.ProfileLike{
		ViewerID:    viewerID,
		ProfileID:   profileID,
		IsSuperlike: super,
	}
	if err := uc.likeRepo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to record like: %w", err)
	}

	mutual, err := uc.likeRepo.Exists(ctx, profileID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check mutual like: %w", err)
	}

	result := &LikeResult{IsMatch: mutual}
	if mutual {
		matched, err := uc.profileRepo.GetByID(ctx, profileID)
		if err != nil {
			// The like is stored; report the match without the profile card.
			return result, nil
		}
		result.Matched = matched
	}
	return result, nil
}
