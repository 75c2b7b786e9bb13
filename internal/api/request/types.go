package request

// GenerateWordRequest is the request body for obtaining a word pair.
// Source selects the variant: "ai" uses Category/Difficulty/Model,
// "manual" uses Word/Hint.
type GenerateWordRequest struct {
	Source     string `json:"source"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Model      string `json:"model,omitempty"`
	Word       string `json:"word,omitempty"`
	Hint       string `json:"hint,omitempty"`
}

// CreateRosterRequest is the request body for starting a roster draft
type CreateRosterRequest struct {
	GameMasterName string `json:"game_master_name"`
}

// AddPlayerRequest is the request body for adding a player to a draft
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// CreateGameRequest is the request body for building a session.
// Exactly one of RosterID or Players must be supplied.
type CreateGameRequest struct {
	RosterID string `json:"roster_id,omitempty"`

	// Inline roster for clients that skip the draft flow. The first
	// player is the game master unless GameMasterID is set.
	Players      []InlinePlayer `json:"players,omitempty"`
	GameMasterID string         `json:"game_master_id,omitempty"`

	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// InlinePlayer is a pre-identified player in an inline roster
type InlinePlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RevealRequest is the request body for claiming a player id
type RevealRequest struct {
	PlayerID string `json:"player_id"`
}
