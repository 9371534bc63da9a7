package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swagateam/swagabot/internal/domain"
)

type LikeRepository interface {
	// Create stores a like. Repeat likes for the same pair are a no-op.
	Create(ctx context.Context, like *domain.ProfileLike) error
	// Exists checks whether viewer has liked profile.
	Exists(ctx context.Context, viewerID, profileID uuid.UUID) (bool, error)
}
