package model

import (
	"strings"
	"time"
)

// DraftID uniquely identifies an in-progress roster
type DraftID string

// RosterDraft is the mutable player list a game master assembles
// before a session is built. Once a session is created from it the
// draft is discarded; the session's player snapshot is the sole
// authority from then on.
type RosterDraft struct {
	ID           DraftID
	Players      []Player // insertion order
	GameMasterID PlayerID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetPlayer returns the player with the given id, or nil if not present
func (d *RosterDraft) GetPlayer(id PlayerID) *Player {
	for i := range d.Players {
		if d.Players[i].ID == id {
			return &d.Players[i]
		}
	}
	return nil
}

// FindByName returns the player with the given display name
// (case-insensitive), or nil if not present
func (d *RosterDraft) FindByName(name string) *Player {
	for i := range d.Players {
		if strings.EqualFold(d.Players[i].Name, name) {
			return &d.Players[i]
		}
	}
	return nil
}
