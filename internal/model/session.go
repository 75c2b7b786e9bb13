package model

import "time"

// GameID uniquely identifies a game session. It doubles as the share
// code players receive out-of-band.
type GameID string

// GameSession is the single persisted document representing one round.
// It is written exactly once at creation; the only field that ever
// changes afterwards is IsGameOver (false -> true, never back).
type GameSession struct {
	ID           GameID
	ImposterWord string
	Hint         string // may be empty

	ImposterID       PlayerID
	GameMasterID     PlayerID
	StartingPlayerID PlayerID

	// Players is a snapshot of the roster at creation time, in
	// insertion order. ImposterID, GameMasterID and StartingPlayerID
	// always reference an entry in it.
	Players []Player

	IsGameOver bool

	CreatedAt time.Time
	EndedAt   time.Time // zero until the game-over flip
}

// FindPlayer returns the player matching the claimed id
// (case-insensitive), or nil if no player in the snapshot matches.
func (s *GameSession) FindPlayer(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].IDEquals(id) {
			return &s.Players[i]
		}
	}
	return nil
}

// ImposterName resolves the imposter's display name via the snapshot
func (s *GameSession) ImposterName() string {
	if p := s.FindPlayer(s.ImposterID); p != nil {
		return p.Name
	}
	return ""
}
