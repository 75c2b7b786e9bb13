package redis

import (
	"fmt"

	"github.com/imposterparty/imposterparty/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "imposter"

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// draftKey returns the Redis key for a RosterDraft
func draftKey(id model.DraftID) string {
	return fmt.Sprintf("%s:draft:%s", keyPrefix, id)
}
