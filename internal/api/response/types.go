package response

import (
	"time"

	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/services/session"
)

// Player represents a player in API responses
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:   string(p.ID),
		Name: p.Name,
	}
}

// WordPair is the response for word generation
type WordPair struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// WordPairFromModel converts model.WordPair
func WordPairFromModel(p *model.WordPair) WordPair {
	return WordPair{
		Word: p.Word,
		Hint: p.Hint,
	}
}

// Roster represents a roster draft in API responses
type Roster struct {
	ID           string    `json:"id"`
	Players      []Player  `json:"players"`
	GameMasterID string    `json:"game_master_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RosterFromModel converts model.RosterDraft
func RosterFromModel(d *model.RosterDraft) Roster {
	players := make([]Player, len(d.Players))
	for i := range d.Players {
		players[i] = PlayerFromModel(&d.Players[i])
	}
	return Roster{
		ID:           string(d.ID),
		Players:      players,
		GameMasterID: string(d.GameMasterID),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Game represents a session in API responses. The secret word, hint
// and imposter id are withheld while the game is live; once the game
// is over the full reveal is included.
type Game struct {
	ID               string    `json:"id"`
	Players          []Player  `json:"players"`
	GameMasterID     string    `json:"game_master_id"`
	StartingPlayerID string    `json:"starting_player_id"`
	IsGameOver       bool      `json:"is_game_over"`
	CreatedAt        time.Time `json:"created_at"`

	EndedAt      *time.Time `json:"ended_at,omitempty"`
	ImposterWord string     `json:"imposter_word,omitempty"`
	ImposterID   string     `json:"imposter_id,omitempty"`
	ImposterName string     `json:"imposter_name,omitempty"`
}

// GameFromModel converts model.GameSession for general consumption
func GameFromModel(s *model.GameSession) Game {
	players := make([]Player, len(s.Players))
	for i := range s.Players {
		players[i] = PlayerFromModel(&s.Players[i])
	}

	g := Game{
		ID:               string(s.ID),
		Players:          players,
		GameMasterID:     string(s.GameMasterID),
		StartingPlayerID: string(s.StartingPlayerID),
		IsGameOver:       s.IsGameOver,
		CreatedAt:        s.CreatedAt,
	}

	if s.IsGameOver {
		endedAt := s.EndedAt
		g.EndedAt = &endedAt
		g.ImposterWord = s.ImposterWord
		g.ImposterID = string(s.ImposterID)
		g.ImposterName = s.ImposterName()
	}

	return g
}

// Reveal is a player's private view of the round
type Reveal struct {
	Player           Player `json:"player"`
	IsImposter       bool   `json:"is_imposter"`
	IsGameMaster     bool   `json:"is_game_master"`
	IsStartingPlayer bool   `json:"is_starting_player"`
	Payload          string `json:"payload"`
}

// RevealFromService converts a session.Reveal
func RevealFromService(r *session.Reveal) Reveal {
	return Reveal{
		Player:           PlayerFromModel(&r.Player),
		IsImposter:       r.IsImposter,
		IsGameMaster:     r.IsGameMaster,
		IsStartingPlayer: r.IsStartingPlayer,
		Payload:          r.Payload,
	}
}
