package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileLike records a viewer liking a candidate. A superlike is a like with
// extra weight in the UI; both share the same pair-unique ledger.
type ProfileLike struct {
	ViewerID    uuid.UUID `json:"viewer_id" db:"viewer_id"`
	ProfileID   uuid.UUID `json:"profile_id" db:"profile_id"`
	IsSuperlike bool      `json:"is_superlike" db:"is_superlike"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// IsMutual reports whether two likes form a match.
func (l *ProfileLike) IsMutual(other *ProfileLike) bool {
	return l.ViewerID == other.ProfileID && l.ProfileID == other.ViewerID
}
