package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExperiences(t *testing.T) {
	experiences := New().List()
	require.Len(t, experiences, 8)

	for _, exp := range experiences {
		assert.NotEmpty(t, exp.ID)
		assert.NotEmpty(t, exp.Title)
		assert.Positive(t, exp.Price)
		assert.NotEmpty(t, exp.Availability, "experience %s has no availability", exp.ID)
	}
}

func TestGetExperience(t *testing.T) {
	exp, err := New().Get("1")
	require.NoError(t, err)

	assert.Equal(t, "Kayaking", exp.Title)
	assert.Equal(t, "Udupi", exp.Location)
	assert.Equal(t, 999, exp.Price)
	require.NotEmpty(t, exp.Availability)
	assert.Equal(t, "2025-10-22", exp.Availability[0].Date)
	assert.Contains(t, exp.Availability[0].Times, "09:00 am")
}

func TestGetExperienceUnknownID(t *testing.T) {
	_, err := New().Get("999")
	assert.ErrorIs(t, err, ErrNotFound)
}
