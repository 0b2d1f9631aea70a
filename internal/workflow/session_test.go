package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"experience-booking/internal/models"
)

func TestSessionDraftOverwrite(t *testing.T) {
	store := NewSessionStore()
	token := store.NewSession()

	_, ok := store.Draft(token)
	assert.False(t, ok)

	store.PutDraft(token, Draft{ExperienceID: "1", Quantity: 1, TotalPrice: 999})
	store.PutDraft(token, Draft{ExperienceID: "2", Quantity: 3, TotalPrice: 2697})

	draft, ok := store.Draft(token)
	require.True(t, ok)
	assert.Equal(t, "2", draft.ExperienceID)
	assert.Equal(t, 3, draft.Quantity)

	// Reading a draft does not consume it.
	_, ok = store.Draft(token)
	assert.True(t, ok)

	store.ClearDraft(token)
	_, ok = store.Draft(token)
	assert.False(t, ok)
}

func TestSessionResultSingleConsumption(t *testing.T) {
	store := NewSessionStore()
	token := store.NewSession()

	_, ok := store.TakeResult(token)
	assert.False(t, ok)

	store.PutResult(token, models.BookingResponse{Success: true, BookingID: "ABC123"})

	result, ok := store.TakeResult(token)
	require.True(t, ok)
	assert.Equal(t, "ABC123", result.BookingID)

	_, ok = store.TakeResult(token)
	assert.False(t, ok, "second read finds nothing")
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewSessionStore()
	first := store.NewSession()
	second := store.NewSession()
	require.NotEqual(t, first, second)

	store.PutDraft(first, Draft{ExperienceID: "1"})

	_, ok := store.Draft(second)
	assert.False(t, ok)
}

func TestUnknownTokenIsIgnored(t *testing.T) {
	store := NewSessionStore()

	store.PutDraft("missing", Draft{ExperienceID: "1"})
	_, ok := store.Draft("missing")
	assert.False(t, ok)

	store.PutResult("missing", models.BookingResponse{Success: true})
	_, ok = store.TakeResult("missing")
	assert.False(t, ok)
}
