package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/swagateam/swagabot/internal/domain"
	"github.com/swagateam/swagabot/internal/repository"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *domain.ProfileLike) error {
	query := `
		INSERT INTO profile_likes (viewer_id, profile_id, is_superlike)
		VALUES ($1, $2, $3)
		ON CONFLICT (viewer_id, profile_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, like.ViewerID, like.ProfileID, like.IsSuperlike)
	return err
}

func (r *likeRepository) Exists(ctx context.Context, viewerID, profileID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM profile_likes
			WHERE viewer_id = $1 AND profile_id = $2
		)
	`
	err := r.db.GetContext(ctx, &exists, query, viewerID, profileID)
	return exists, err
}
