package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileActivity is the engagement counter for a profile acting as viewer.
// The count is the sole ranking signal for candidate selection.
type ProfileActivity struct {
	ProfileID     uuid.UUID `json:"profile_id" db:"profile_id"`
	ActivityCount int       `json:"activity_count" db:"activity_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
