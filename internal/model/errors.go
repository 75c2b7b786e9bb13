package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrDraftNotFound     = errors.New("roster draft not found")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrGameMasterRemoval = errors.New("the game master cannot be removed")
	ErrPlayerNotFound    = errors.New("player not found")

	// Session errors
	ErrSessionNotFound    = errors.New("game session not found")
	ErrTooFewPlayers      = errors.New("at least two players are required")
	ErrPlayerNotInSession = errors.New("player is not part of the session")
	ErrIdentityMismatch   = errors.New("no player with that id in this session")

	// Word source errors
	ErrInvalidCategory   = errors.New("category must be at least 2 characters")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
	ErrInvalidWord       = errors.New("word must be at least 2 characters")
	ErrGeneration        = errors.New("word generation failed")
	ErrQuotaExceeded     = errors.New("word generation quota exhausted")
)
