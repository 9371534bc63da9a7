package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/swagateam/swagabot/internal/domain"
	"github.com/swagateam/swagabot/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, user_id, username, displayed_name, age, gender,
			location, description, file_ids, interests
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.Username, profile.DisplayedName,
		profile.Age, profile.Gender, profile.Location, profile.Description,
		pq.Array(profile.FileIDs), pq.Array(profile.Interests),
	).Scan(&profile.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := r.scanOne(ctx, `WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	profile, err := r.scanOne(ctx, `WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) scanOne(ctx context.Context, where string, arg interface{}) (*domain.Profile, error) {
	var profile domain.Profile
	query := `
		SELECT id, user_id, username, displayed_name, age, gender,
		       location, description, file_ids, interests, created_at
		FROM profiles ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&profile.ID, &profile.UserID, &profile.Username, &profile.DisplayedName,
		&profile.Age, &profile.Gender, &profile.Location, &profile.Description,
		pq.Array(&profile.FileIDs), pq.Array(&profile.Interests),
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateAge(ctx context.Context, username string, age int) error {
	query := `UPDATE profiles SET age = $1 WHERE username = $2`
	return r.execOne(ctx, query, age, username)
}

func (r *profileRepository) UpdateGender(ctx context.Context, username string, gender domain.Gender) error {
	query := `UPDATE profiles SET gender = $1 WHERE username = $2`
	return r.execOne(ctx, query, gender.String(), username)
}

func (r *profileRepository) UpdateDisplayedName(ctx context.Context, username string, name string) error {
	query := `UPDATE profiles SET displayed_name = $1 WHERE username = $2`
	return r.execOne(ctx, query, name, username)
}

func (r *profileRepository) UpdateLocation(ctx context.Context, username string, location string) error {
	query := `UPDATE profiles SET location = $1 WHERE username = $2`
	return r.execOne(ctx, query, location, username)
}

func (r *profileRepository) UpdateDescription(ctx context.Context, username string, description string) error {
	query := `UPDATE profiles SET description = $1 WHERE username = $2`
	return r.execOne(ctx, query, description, username)
}

func (r *profileRepository) execOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
