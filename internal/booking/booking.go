package booking

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"experience-booking/internal/models"
)

// ErrNotFound is returned when no booking matches the requested id.
var ErrNotFound = errors.New("booking not found")

// Store holds bookings created during the life of the process.
// Records are append-only: no update or delete exists.
type Store interface {
	// Create stores the request under a freshly generated booking id
	// and returns the stored record.
	Create(req models.BookingRequest) (models.BookingRecord, error)

	// Get returns the record with the given id, or ErrNotFound.
	Get(id string) (models.BookingRecord, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	bookings map[string]models.BookingRecord
	newID    func() string
}

// New returns an empty in-memory booking store.
func New() Store {
	return &memoryStore{
		bookings: make(map[string]models.BookingRecord),
		newID:    generateID,
	}
}

func (s *memoryStore) Create(req models.BookingRequest) (models.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Retry until the id is unused; a Create never overwrites an
	// existing booking.
	id := s.newID()
	for _, taken := s.bookings[id]; taken; _, taken = s.bookings[id] {
		id = s.newID()
	}

	record := models.BookingRecord{
		BookingRequest: req,
		BookingID:      id,
		CreatedAt:      time.Now().UTC(),
	}
	s.bookings[id] = record
	return record, nil
}

func (s *memoryStore) Get(id string) (models.BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.bookings[id]
	if !ok {
		return models.BookingRecord{}, ErrNotFound
	}
	return record, nil
}

const (
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idLength   = 6
)

// generateID produces a 6-character upper-case base-36 booking id.
func generateID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}
