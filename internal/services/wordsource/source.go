package wordsource

import (
	"context"
	"strings"

	"github.com/imposterparty/imposterparty/internal/model"
)

// MinWordLength is the shortest acceptable secret word or category
const MinWordLength = 2

// Source produces the word/hint pair a session is built from. The
// session builder never knows which variant it is talking to.
type Source interface {
	Produce(ctx context.Context) (*model.WordPair, error)
}

// ManualSource wraps a word the game master typed in themselves
type ManualSource struct {
	pair model.WordPair
}

// NewManualSource validates and wraps an operator-provided word
func NewManualSource(word, hint string) (*ManualSource, error) {
	word = strings.TrimSpace(word)
	if len([]rune(word)) < MinWordLength {
		return nil, model.ErrInvalidWord
	}
	return &ManualSource{
		pair: model.WordPair{
			Word: word,
			Hint: strings.TrimSpace(hint),
		},
	}, nil
}

var _ Source = (*ManualSource)(nil)

func (s *ManualSource) Produce(_ context.Context) (*model.WordPair, error) {
	pair := s.pair
	return &pair, nil
}
