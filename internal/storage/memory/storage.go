package memory

import (
	"context"
	"sync"
	"time"

	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions map[model.GameID]*model.GameSession
	drafts   map[model.DraftID]*model.RosterDraft
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.GameID]*model.GameSession),
		drafts:   make(map[model.DraftID]*model.RosterDraft),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.GameID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) SessionExists(ctx context.Context, id model.GameID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok, nil
}

func (s *Storage) SetGameOver(ctx context.Context, id model.GameID, endedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return model.ErrSessionNotFound
	}
	if session.IsGameOver {
		return nil
	}
	session.IsGameOver = true
	session.EndedAt = endedAt
	return nil
}

// Roster draft operations

func (s *Storage) SaveDraft(ctx context.Context, draft *model.RosterDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = draft
	return nil
}

func (s *Storage) GetDraft(ctx context.Context, id model.DraftID) (*model.RosterDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, model.ErrDraftNotFound
	}
	return draft, nil
}

func (s *Storage) DeleteDraft(ctx context.Context, id model.DraftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}
