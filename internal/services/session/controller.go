package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/imposterparty/imposterparty/internal/dependencies/clock"
	"github.com/imposterparty/imposterparty/internal/dependencies/random"
	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/storage"
)

const (
	// GameIDLength is the length of generated game ids (share codes)
	GameIDLength = 6
	// GameIDAlphabet is the characters used in game ids
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// MinPlayers is the smallest roster a session can be built from
	MinPlayers = 2
)

// Controller builds and reads game sessions
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With("component", "session"),
	}
}

// Create builds a session from a player roster and a secret word. The
// imposter and the starting player are drawn independently, so the
// imposter may also open the round. Nothing is persisted if any
// validation fails.
func (c *Controller) Create(
	ctx context.Context,
	players []model.Player,
	gameMasterID model.PlayerID,
	word, hint string,
) (*model.GameSession, error) {
	if len(players) < MinPlayers {
		return nil, model.ErrTooFewPlayers
	}

	word = strings.TrimSpace(word)
	if len([]rune(word)) < 2 {
		return nil, model.ErrInvalidWord
	}

	gameMasterFound := false
	for i := range players {
		if players[i].ID == gameMasterID {
			gameMasterFound = true
			break
		}
	}
	if !gameMasterFound {
		return nil, model.ErrPlayerNotInSession
	}

	// Snapshot the roster; the session owns its player list from here
	snapshot := make([]model.Player, len(players))
	copy(snapshot, players)

	imposter := snapshot[c.random.Intn(len(snapshot))]
	starting := snapshot[c.random.Intn(len(snapshot))]

	session := &model.GameSession{
		ID:               model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		ImposterWord:     word,
		Hint:             strings.TrimSpace(hint),
		ImposterID:       imposter.ID,
		GameMasterID:     gameMasterID,
		StartingPlayerID: starting.ID,
		Players:          snapshot,
		IsGameOver:       false,
		CreatedAt:        c.clock.Now(),
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session created",
		"game_id", session.ID,
		"players", len(session.Players))

	return session, nil
}

// Get retrieves a session by game id
func (c *Controller) Get(ctx context.Context, id model.GameID) (*model.GameSession, error) {
	return c.storage.GetSession(ctx, id)
}

// EndGame flips the session to game over. Ending an already ended
// game is a successful no-op.
func (c *Controller) EndGame(ctx context.Context, id model.GameID) (*model.GameSession, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsGameOver {
		return session, nil
	}

	if err := c.storage.SetGameOver(ctx, id, c.clock.Now()); err != nil {
		return nil, err
	}

	c.logger.Info("game ended", "game_id", id)

	return c.storage.GetSession(ctx, id)
}

// Reveal is what a player sees after claiming their id
type Reveal struct {
	Player           model.Player
	IsImposter       bool
	IsGameMaster     bool
	IsStartingPlayer bool

	// Payload is the hint for the imposter and the secret word for
	// everyone else
	Payload string
}

// ResolveRole matches a claimed player id against the session's
// snapshot and returns that player's private view of the round
func (c *Controller) ResolveRole(session *model.GameSession, claimed model.PlayerID) (*Reveal, error) {
	player := session.FindPlayer(claimed)
	if player == nil {
		return nil, model.ErrIdentityMismatch
	}

	isImposter := player.ID == session.ImposterID
	payload := session.ImposterWord
	if isImposter {
		payload = session.Hint
	}

	return &Reveal{
		Player:           *player,
		IsImposter:       isImposter,
		IsGameMaster:     player.ID == session.GameMasterID,
		IsStartingPlayer: player.ID == session.StartingPlayerID,
		Payload:          payload,
	}, nil
}
