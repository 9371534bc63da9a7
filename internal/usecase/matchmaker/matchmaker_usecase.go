package matchmaker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/swagateam/swagabot/internal/domain"
	"github.com/swagateam/swagabot/internal/repository"
)

// rankingPageSize bounds each scan of the activity ranking.
const rankingPageSize = 50

type MatchmakerUseCase struct {
	profileRepo  repository.ProfileRepository
	activityRepo repository.ActivityRepository
	exposureRepo repository.ExposureRepository
}

func NewMatchmakerUseCase(
	profileRepo repository.ProfileRepository,
	activityRepo repository.ActivityRepository,
	exposureRepo repository.ExposureRepository,
) *MatchmakerUseCase {
	return &MatchmakerUseCase{
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		exposureRepo: exposureRepo,
	}
}

// SelectNext picks the candidate profile to show the viewer: the most active
// profile network-wide that the viewer has not seen yet. The viewer's own
// matching attempt is counted first, independent of who gets shown.
//
// Returns domain.ErrActivityNotFound when no profile has ever matched (cold
// start) and domain.ErrNoCandidates when the viewer has seen everyone.
func (uc *MatchmakerUseCase) SelectNext(ctx context.Context, viewerID uuid.UUID) (*domain.Profile, error) {
	if _, err := uc.activityRepo.IncrementOrInsert(ctx, viewerID); err != nil {
		return nil, fmt.Errorf("failed to record matching attempt: %w", err)
	}

	top, err := uc.activityRepo.MostActive(ctx)
	if err != nil {
		// ErrActivityNotFound surfaces as-is: a cold start must not be
		// silently defaulted.
		return nil, err
	}

	candidateID := top.ProfileID
	if candidateID == viewerID {
		candidateID, err = uc.pickUnseen(ctx, viewerID)
	} else {
		var seen bool
		seen, err = uc.exposureRepo.Exists(ctx, viewerID, candidateID)
		if err != nil {
			return nil, fmt.Errorf("failed to check exposure: %w", err)
		}
		if seen {
			// Fall back to the next-most-active unseen candidate instead
			// of re-showing the same profile.
			candidateID, err = uc.pickUnseen(ctx, viewerID)
		}
	}
	if err != nil {
		return nil, err
	}

	candidate, err := uc.profileRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve candidate %s: %w", candidateID, err)
	}

	if err := uc.exposureRepo.Record(ctx, viewerID, candidate.ID); err != nil {
		return nil, fmt.Errorf("failed to record exposure: %w", err)
	}

	return candidate, nil
}

// pickUnseen walks the activity ranking from the top and returns the first
// candidate the viewer has not been shown. The viewer never matches themself.
func (uc *MatchmakerUseCase) pickUnseen(ctx context.Context, viewerID uuid.UUID) (uuid.UUID, error) {
	for offset := 0; ; offset += rankingPageSize {
		page, err := uc.activityRepo.ListMostActive(ctx, rankingPageSize, offset)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to list activity ranking: %w", err)
		}
		if len(page) == 0 {
			break
		}

		for _, activity := range page {
			if activity.ProfileID == viewerID {
				continue
			}
			seen, err := uc.exposureRepo.Exists(ctx, viewerID, activity.ProfileID)
			if err != nil {
				return uuid.Nil, fmt.Errorf("failed to check exposure: %w", err)
			}
			if !seen {
				return activity.ProfileID, nil
			}
		}

		if len(page) < rankingPageSize {
			break
		}
	}

	return uuid.Nil, domain.ErrNoCandidates
}
