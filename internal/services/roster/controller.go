package roster

import (
	"context"
	"strings"

	"github.com/imposterparty/imposterparty/internal/dependencies/clock"
	"github.com/imposterparty/imposterparty/internal/dependencies/random"
	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/storage"
)

const (
	// IDLength is the length of generated player and draft ids
	IDLength = 6
	// IDAlphabet is the characters used in generated ids
	IDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Controller manages roster drafts: the player list a game master
// assembles before a session is created
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// NewController creates a new roster Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
	}
}

// CreateDraft starts a new roster draft with the game master as the
// first enrolled player
func (c *Controller) CreateDraft(ctx context.Context, gameMasterName string) (*model.RosterDraft, error) {
	gameMasterName = strings.TrimSpace(gameMasterName)
	if gameMasterName == "" {
		return nil, model.ErrEmptyName
	}

	now := c.clock.Now()
	gameMaster := model.Player{
		ID:   model.PlayerID(c.random.String(IDLength, IDAlphabet)),
		Name: gameMasterName,
	}

	draft := &model.RosterDraft{
		ID:           model.DraftID(c.random.String(IDLength, IDAlphabet)),
		Players:      []model.Player{gameMaster},
		GameMasterID: gameMaster.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storage.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// GetDraft retrieves a roster draft by id
func (c *Controller) GetDraft(ctx context.Context, id model.DraftID) (*model.RosterDraft, error) {
	return c.storage.GetDraft(ctx, id)
}

// AddPlayer adds a player to the draft. A blank name is a silent
// no-op and a name already on the roster (case-insensitive) returns
// the existing player rather than a duplicate.
func (c *Controller) AddPlayer(ctx context.Context, id model.DraftID, name string) (*model.RosterDraft, *model.Player, error) {
	draft, err := c.storage.GetDraft(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return draft, nil, nil
	}

	if existing := draft.FindByName(name); existing != nil {
		return draft, existing, nil
	}

	player := model.Player{
		ID:   model.PlayerID(c.random.String(IDLength, IDAlphabet)),
		Name: name,
	}
	draft.Players = append(draft.Players, player)
	draft.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveDraft(ctx, draft); err != nil {
		return nil, nil, err
	}

	return draft, &draft.Players[len(draft.Players)-1], nil
}

// RemovePlayer removes a player from the draft. The game master
// cannot be removed; removing an id that is not on the roster is a
// no-op.
func (c *Controller) RemovePlayer(ctx context.Context, id model.DraftID, playerID model.PlayerID) (*model.RosterDraft, error) {
	draft, err := c.storage.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if playerID == draft.GameMasterID {
		return nil, model.ErrGameMasterRemoval
	}

	for i := range draft.Players {
		if draft.Players[i].ID == playerID {
			draft.Players = append(draft.Players[:i], draft.Players[i+1:]...)
			draft.UpdatedAt = c.clock.Now()
			if err := c.storage.SaveDraft(ctx, draft); err != nil {
				return nil, err
			}
			break
		}
	}

	return draft, nil
}

// DeleteDraft discards a roster draft
func (c *Controller) DeleteDraft(ctx context.Context, id model.DraftID) error {
	return c.storage.DeleteDraft(ctx, id)
}
