package model

import "strings"

// PlayerID uniquely identifies a player within a session
type PlayerID string

// Player represents a game participant
type Player struct {
	ID   PlayerID
	Name string
}

// IDEquals reports whether the player's id matches the given id,
// ignoring case. Player ids are typed in by hand on small screens,
// so identity claims are matched case-insensitively.
func (p *Player) IDEquals(id PlayerID) bool {
	return strings.EqualFold(string(p.ID), string(id))
}
