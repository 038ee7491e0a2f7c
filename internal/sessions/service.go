package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service contains session lifecycle logic shared by both workflows.
type Service struct {
	Repo Repo
}

// Create opens a fresh session in the idle state.
func (s *Service) Create(ctx context.Context, workflow Workflow) (Session, error) {
	now := time.Now().UTC()
	session := Session{
		ID:        uuid.NewString(),
		Workflow:  workflow,
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Get returns a session by ID.
func (s *Service) Get(ctx context.Context, sessionID string) (Session, error) {
	return s.Repo.GetByID(ctx, sessionID)
}

// Reset discards derived artifacts and returns the session to collecting.
func (s *Service) Reset(ctx context.Context, sessionID string) (Session, error) {
	session, err := s.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	session.Reset()
	if err := s.Repo.Update(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Delete drops the session entirely.
func (s *Service) Delete(ctx context.Context, sessionID string) error {
	return s.Repo.Delete(ctx, sessionID)
}
