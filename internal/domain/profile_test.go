package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGender(t *testing.T) {
	for _, input := range []string{"MALE", "male", "M", "m"} {
		g, err := ParseGender(input)
		require.NoError(t, err)
		assert.Equal(t, GenderMale, g)
	}
	for _, input := range []string{"FEMALE", "female", "F", "f"} {
		g, err := ParseGender(input)
		require.NoError(t, err)
		assert.Equal(t, GenderFemale, g)
	}

	_, err := ParseGender("dolphin")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProfileCard(t *testing.T) {
	p := NewProfile(1, "alice")
	assert.Equal(t, "alice", p.Card())

	p.Age = 29
	p.Location = "Berlin"
	p.Description = "Loves hiking"
	assert.Equal(t, "alice, 29, Berlin - Loves hiking", p.Card())

	p.DisplayedName = "Alice"
	assert.Equal(t, "Alice, 29, Berlin - Loves hiking", p.Card())
}
