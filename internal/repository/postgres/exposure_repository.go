package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/swagateam/swagabot/internal/repository"
)

type exposureRepository struct {
	db *sqlx.DB
}

func NewExposureRepository(db *sqlx.DB) repository.ExposureRepository {
	return &exposureRepository{db: db}
}

func (r *exposureRepository) Record(ctx context.Context, viewerID, profileID uuid.UUID) error {
	// The composite primary key enforces pair uniqueness; re-recording a
	// pair is a no-op instead of a duplicate row.
	query := `
		INSERT INTO profile_views (viewer_id, profile_id)
		VALUES ($1, $2)
		ON CONFLICT (viewer_id, profile_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, viewerID, profileID)
	return err
}

func (r *exposureRepository) Exists(ctx context.Context, viewerID, profileID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM profile_views
			WHERE viewer_id = $1 AND profile_id = $2
		)
	`
	err := r.db.GetContext(ctx, &exists, query, viewerID, profileID)
	return exists, err
}
