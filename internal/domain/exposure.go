package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileView records the fact "viewer has been shown candidate". The
// (viewer, profile) pair is unique at the storage layer; rows are never
// mutated or deleted.
type ProfileView struct {
	ViewerID  uuid.UUID `json:"viewer_id" db:"viewer_id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
