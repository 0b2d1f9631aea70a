package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"experience-booking/internal/models"
)

var idPattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func sampleRequest() models.BookingRequest {
	return models.BookingRequest{
		ExperienceID: "1",
		Date:         "2025-10-22",
		Time:         "09:00 am",
		FullName:     "A B",
		Email:        "a@b.co",
		Quantity:     2,
		TotalPrice:   1998,
	}
}

func TestCreateAndGet(t *testing.T) {
	store := New()

	record, err := store.Create(sampleRequest())
	require.NoError(t, err)

	assert.Regexp(t, idPattern, record.BookingID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, sampleRequest(), record.BookingRequest)

	got, err := store.Get(record.BookingID)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestGetUnknownID(t *testing.T) {
	_, err := New().Get("ZZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRetriesOnIDCollision(t *testing.T) {
	ids := []string{"AAAAAA", "AAAAAA", "BBBBBB"}
	next := 0
	store := &memoryStore{
		bookings: make(map[string]models.BookingRecord),
		newID: func() string {
			id := ids[next]
			next++
			return id
		},
	}

	first, err := store.Create(sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "AAAAAA", first.BookingID)

	second, err := store.Create(sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", second.BookingID)

	// The colliding id still maps to the first record.
	got, err := store.Get("AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	store := New()
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		record, err := store.Create(sampleRequest())
		require.NoError(t, err)
		assert.Regexp(t, idPattern, record.BookingID)
		assert.False(t, seen[record.BookingID], "duplicate id %s", record.BookingID)
		seen[record.BookingID] = true
	}
}
