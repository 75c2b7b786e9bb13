package model

// Difficulty calibrates how obscure the generated word and hint are
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// WordPair is the common output contract of every word source: the
// secret word shown to the crew and the hint shown to the imposter.
type WordPair struct {
	Word string
	Hint string // may be empty
}
