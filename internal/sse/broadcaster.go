package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/imposterparty/imposterparty/internal/model"
)

// Event names published on game streams
const (
	EventSessionUpdate = "session-update"
	EventGameOver      = "game-over"
)

// sessionEvent is the public session snapshot pushed to subscribers.
// It never carries the word, hint or imposter id; those are only
// served through the reveal flow.
type sessionEvent struct {
	GameID           string        `json:"game_id"`
	Players          []playerEvent `json:"players"`
	GameMasterID     string        `json:"game_master_id"`
	StartingPlayerID string        `json:"starting_player_id"`
	IsGameOver       bool          `json:"is_game_over"`
}

type playerEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// gameOverEvent is the terminal reveal pushed when the round ends.
// At game over the word and the imposter are public knowledge.
type gameOverEvent struct {
	GameID       string `json:"game_id"`
	ImposterWord string `json:"imposter_word"`
	ImposterID   string `json:"imposter_id"`
	ImposterName string `json:"imposter_name"`
}

func sessionEventFromModel(session *model.GameSession) sessionEvent {
	players := make([]playerEvent, len(session.Players))
	for i, p := range session.Players {
		players[i] = playerEvent{ID: string(p.ID), Name: p.Name}
	}
	return sessionEvent{
		GameID:           string(session.ID),
		Players:          players,
		GameMasterID:     string(session.GameMasterID),
		StartingPlayerID: string(session.StartingPlayerID),
		IsGameOver:       session.IsGameOver,
	}
}

// SessionSnapshot renders the initial session-update frame for a new
// subscriber
func SessionSnapshot(session *model.GameSession) []byte {
	data, err := json.Marshal(sessionEventFromModel(session))
	if err != nil {
		return nil
	}
	return formatSSEMessage(EventSessionUpdate, string(data))
}

// Broadcaster publishes session changes to SSE clients
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastSessionUpdate pushes the current session snapshot to all
// subscribed clients
func (b *Broadcaster) BroadcastSessionUpdate(session *model.GameSession) {
	hub := b.hubManager.GetHub(session.ID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(sessionEventFromModel(session))
	if err != nil {
		b.logger.Error("sse failed to encode session update",
			slog.String("game_id", string(session.ID)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(EventSessionUpdate, string(data))
}

// BroadcastGameOver pushes the terminal reveal after the game-over
// flip, following an up-to-date session snapshot
func (b *Broadcaster) BroadcastGameOver(session *model.GameSession) {
	hub := b.hubManager.GetHub(session.ID)
	if hub == nil {
		return
	}

	b.BroadcastSessionUpdate(session)

	data, err := json.Marshal(gameOverEvent{
		GameID:       string(session.ID),
		ImposterWord: session.ImposterWord,
		ImposterID:   string(session.ImposterID),
		ImposterName: session.ImposterName(),
	})
	if err != nil {
		b.logger.Error("sse failed to encode game over event",
			slog.String("game_id", string(session.ID)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(EventGameOver, string(data))
}
