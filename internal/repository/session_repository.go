package repository

import (
	"sync"

	"github.com/returnlens/Annualized-Return-Backend/internal/apperrors"
	"github.com/returnlens/Annualized-Return-Backend/internal/model"
)

// SessionRepository stores sessions in memory. Sessions are transient by
// design: nothing survives a restart and no history is kept. The map is
// guarded for concurrent HTTP access.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]model.Session),
	}
}

// Save stores a session, replacing any existing session with the same ID.
func (r *SessionRepository) Save(session model.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
}

// Get returns the session with the given ID.
func (r *SessionRepository) Get(id string) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return model.Session{}, apperrors.ErrSessionNotFound
	}
	return session, nil
}

// Update replaces an existing session.
func (r *SessionRepository) Update(session model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return apperrors.ErrSessionNotFound
	}
	r.sessions[session.ID] = session
	return nil
}

// Delete removes the session with the given ID.
func (r *SessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return apperrors.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Count returns the number of live sessions.
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
