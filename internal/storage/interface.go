package storage

import (
	"context"
	"time"

	"github.com/imposterparty/imposterparty/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.GameID) (*model.GameSession, error)
	SessionExists(ctx context.Context, id model.GameID) (bool, error)

	// SetGameOver flips the session's IsGameOver flag and stamps
	// EndedAt. The flip is monotone; calling it on an ended session
	// leaves the original EndedAt in place.
	SetGameOver(ctx context.Context, id model.GameID, endedAt time.Time) error

	// Roster draft operations
	SaveDraft(ctx context.Context, draft *model.RosterDraft) error
	GetDraft(ctx context.Context, id model.DraftID) (*model.RosterDraft, error)
	DeleteDraft(ctx context.Context, id model.DraftID) error
}
