package catalog

import (
	"errors"

	"experience-booking/internal/models"
)

// ErrNotFound is returned when no experience matches the requested id.
var ErrNotFound = errors.New("experience not found")

// Store provides read-only access to the experience catalog.
type Store interface {
	// List returns every experience in catalog order.
	List() []models.Experience

	// Get returns the experience with the given id, or ErrNotFound.
	Get(id string) (models.Experience, error)
}

type memoryStore struct {
	experiences []models.Experience
}

// New returns a store backed by the seed catalog.
func New() Store {
	return &memoryStore{experiences: seedExperiences}
}

func (s *memoryStore) List() []models.Experience {
	return s.experiences
}

// Get scans linearly; the catalog is small and fixed, so no index is kept.
func (s *memoryStore) Get(id string) (models.Experience, error) {
	for _, exp := range s.experiences {
		if exp.ID == id {
			return exp, nil
		}
	}
	return models.Experience{}, ErrNotFound
}
