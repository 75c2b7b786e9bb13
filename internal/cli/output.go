package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case WordPair:
		o.printWordPair(v)
	case Roster:
		o.printRoster(v)
	case Game:
		o.printGame(v)
	case Reveal:
		o.printReveal(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WordPair response type
type WordPair struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// Roster response type
type Roster struct {
	ID           string   `json:"id"`
	Players      []Player `json:"players"`
	GameMasterID string   `json:"game_master_id"`
}

// Game response type
type Game struct {
	ID               string   `json:"id"`
	Players          []Player `json:"players"`
	GameMasterID     string   `json:"game_master_id"`
	StartingPlayerID string   `json:"starting_player_id"`
	IsGameOver       bool     `json:"is_game_over"`
	ImposterWord     string   `json:"imposter_word,omitempty"`
	ImposterID       string   `json:"imposter_id,omitempty"`
	ImposterName     string   `json:"imposter_name,omitempty"`
}

// Reveal response type
type Reveal struct {
	Player           Player `json:"player"`
	IsImposter       bool   `json:"is_imposter"`
	IsGameMaster     bool   `json:"is_game_master"`
	IsStartingPlayer bool   `json:"is_starting_player"`
	Payload          string `json:"payload"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printWordPair(p WordPair) {
	fmt.Printf("Word: %s\n", p.Word)
	if p.Hint != "" {
		fmt.Printf("Hint: %s\n", p.Hint)
	}
}

func (o *Output) printRoster(r Roster) {
	fmt.Printf("Roster: %s\n", r.ID)
	fmt.Printf("Players (%d):\n", len(r.Players))
	for _, p := range r.Players {
		gmStr := ""
		if p.ID == r.GameMasterID {
			gmStr = " [game master]"
		}
		fmt.Printf("  - %s (%s)%s\n", p.Name, p.ID, gmStr)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	if g.IsGameOver {
		fmt.Println("State: over")
	} else {
		fmt.Println("State: live")
	}
	fmt.Printf("Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		tags := ""
		if p.ID == g.GameMasterID {
			tags += " [game master]"
		}
		if p.ID == g.StartingPlayerID {
			tags += " [starts]"
		}
		fmt.Printf("  - %s (%s)%s\n", p.Name, p.ID, tags)
	}

	if g.IsGameOver {
		fmt.Printf("Word: %s\n", g.ImposterWord)
		fmt.Printf("Imposter: %s (%s)\n", g.ImposterName, g.ImposterID)
	}
}

func (o *Output) printReveal(r Reveal) {
	fmt.Printf("Player: %s (%s)\n", r.Player.Name, r.Player.ID)

	if r.IsImposter {
		fmt.Println("Role: IMPOSTER")
		if r.Payload != "" {
			fmt.Printf("Hint: %s\n", r.Payload)
		}
	} else {
		fmt.Println("Role: crew")
		fmt.Printf("Word: %s\n", r.Payload)
	}

	if r.IsGameMaster {
		fmt.Println("You are the game master")
	}
	if r.IsStartingPlayer {
		fmt.Println("You start the discussion")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
