package repository

import (
	"context"

	"github.com/google/uuid"
)

type ExposureRepository interface {
	// Record stores the (viewer, profile) pair. Recording the same pair twice
	// is a no-op; the pair is unique at the storage layer.
	Record(ctx context.Context, viewerID, profileID uuid.UUID) error
	// Exists checks the full (viewer, profile) pair.
	Exists(ctx context.Context, viewerID, profileID uuid.UUID) (bool, error)
}
