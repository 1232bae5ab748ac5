package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/returnlens/Annualized-Return-Backend/internal/model"
	"github.com/returnlens/Annualized-Return-Backend/internal/repository"
)

// SessionService manages interactive calculator sessions. A session owns
// one InputState; every update replaces the inputs wholesale and the
// result is recomputed synchronously by the caller. Sessions start from
// the form defaults (15% total return over 12 monthly periods).
type SessionService struct {
	sessionRepo *repository.SessionRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionRepo *repository.SessionRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
	}
}

// Create starts a new session with the default inputs.
func (s *SessionService) Create() model.Session {
	now := time.Now().UTC()
	session := model.Session{
		ID:        uuid.NewString(),
		Inputs:    model.DefaultInputState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessionRepo.Save(session)
	return session
}

// Get returns the session with the given ID.
func (s *SessionService) Get(id string) (model.Session, error) {
	return s.sessionRepo.Get(id)
}

// UpdateInputs replaces the session's inputs. Inputs that fail validation
// are stored anyway: the session mirrors whatever the user typed, and the
// presenter decides whether a result can be shown for it.
func (s *SessionService) UpdateInputs(id string, inputs model.InputState) (model.Session, error) {
	session, err := s.sessionRepo.Get(id)
	if err != nil {
		return model.Session{}, err
	}

	session.Inputs = inputs
	session.UpdatedAt = time.Now().UTC()
	if err := s.sessionRepo.Update(session); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

// Delete ends the session with the given ID.
func (s *SessionService) Delete(id string) error {
	return s.sessionRepo.Delete(id)
}
