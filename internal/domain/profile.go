package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Gender is the closed set of profile genders.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseGender maps user text to a Gender.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "MALE", "male", "Male", "M", "m", "1":
		return GenderMale, nil
	case "FEMALE", "female", "Female", "F", "f", "2":
		return GenderFemale, nil
	default:
		return "", ErrInvalidInput
	}
}

func (g Gender) String() string {
	return string(g)
}

type Profile struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	Username      string    `json:"username" db:"username"`
	DisplayedName string    `json:"displayed_name" db:"displayed_name"`
	Age           int       `json:"age" db:"age"`
	Gender        string    `json:"gender" db:"gender"`
	Location      string    `json:"location" db:"location"`
	Description   string    `json:"description" db:"description"`
	FileIDs       []string  `json:"file_ids" db:"file_ids"`
	Interests     []string  `json:"interests" db:"interests"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// NewProfile builds a freshly registered profile. All mutable attributes start
// zero-valued and are filled in as the user completes conversational steps.
func NewProfile(userID int64, username string) *Profile {
	return &Profile{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
	}
}

// Card renders the one-line presentation shown to a viewer.
func (p *Profile) Card() string {
	name := p.DisplayedName
	if name == "" {
		name = p.Username
	}
	card := name
	if p.Age > 0 {
		card = fmt.Sprintf("%s, %d", card, p.Age)
	}
	if p.Location != "" {
		card += ", " + p.Location
	}
	if p.Description != "" {
		card += " - " + p.Description
	}
	return card
}
