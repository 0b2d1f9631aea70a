package workflow

import (
	"sync"

	"github.com/google/uuid"

	"experience-booking/internal/models"
)

// Draft is the selection carried from the details step to checkout.
// It is deleted once a submission succeeds.
type Draft struct {
	ExperienceID string
	Date         string
	Time         string
	Quantity     int
	TotalPrice   int
}

// SessionStore keeps per-session cross-step state: the draft written at
// the details-to-checkout transition and the result written at submission.
// The draft slot overwrites on each write; the result slot is read once
// and then cleared.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
}

type sessionState struct {
	draft  *Draft
	result *models.BookingResponse
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*sessionState)}
}

// NewSession registers a fresh session and returns its token.
func (s *SessionStore) NewSession() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = &sessionState{}
	s.mu.Unlock()
	return token
}

func (s *SessionStore) PutDraft(token string, d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.sessions[token]; ok {
		state.draft = &d
	}
}

func (s *SessionStore) Draft(token string) (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[token]
	if !ok || state.draft == nil {
		return Draft{}, false
	}
	return *state.draft, true
}

func (s *SessionStore) ClearDraft(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.sessions[token]; ok {
		state.draft = nil
	}
}

func (s *SessionStore) PutResult(token string, res models.BookingResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.sessions[token]; ok {
		state.result = &res
	}
}

// TakeResult returns the stored result and clears it, so a second call
// reports absence.
func (s *SessionStore) TakeResult(token string) (models.BookingResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[token]
	if !ok || state.result == nil {
		return models.BookingResponse{}, false
	}
	res := *state.result
	state.result = nil
	return res, true
}
