package wordsource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/imposterparty/imposterparty/internal/model"
)

// DefaultModel is the chat model used when the caller does not pick one
const DefaultModel = openai.GPT4oMini

// Completer is the slice of the OpenAI-compatible client the AI
// source needs. Satisfied by *openai.Client.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AISource asks a chat model for a word/hint pair within a category,
// calibrated by difficulty
type AISource struct {
	client     Completer
	category   string
	difficulty model.Difficulty
	chatModel  string
	logger     *slog.Logger
}

// NewAISource validates the request parameters and builds a source.
// An empty chatModel selects DefaultModel.
func NewAISource(
	client Completer,
	category string,
	difficulty model.Difficulty,
	chatModel string,
	logger *slog.Logger,
) (*AISource, error) {
	category = strings.TrimSpace(category)
	if len([]rune(category)) < MinWordLength {
		return nil, model.ErrInvalidCategory
	}
	if !difficulty.Valid() {
		return nil, model.ErrInvalidDifficulty
	}
	if chatModel == "" {
		chatModel = DefaultModel
	}

	return &AISource{
		client:     client,
		category:   category,
		difficulty: difficulty,
		chatModel:  chatModel,
		logger:     logger.With("component", "wordsource"),
	}, nil
}

var _ Source = (*AISource)(nil)

const systemPrompt = `You are the word maker for a social deduction party game.
Given a category and a difficulty, pick one secret word from the category and a
hint for the one player who does not know the word. Respond with a single JSON
object of the form {"imposterWord": "...", "hint": "..."} and nothing else.`

// difficultyGuidance maps each level to prompt instructions
var difficultyGuidance = map[model.Difficulty]string{
	model.DifficultyEasy:   "Pick a common, widely known word. The hint should be closely related so the imposter can blend in easily.",
	model.DifficultyMedium: "Pick a more specific word. The hint should be moderately related, leaving the imposter some room to guess.",
	model.DifficultyHard:   "Pick a rare or unusual word. The hint should be vague and associative, giving the imposter only a faint idea.",
}

func (s *AISource) userPrompt() string {
	return fmt.Sprintf("Category: %s\nDifficulty: %s\n%s",
		s.category, s.difficulty, difficultyGuidance[s.difficulty])
}

// generatedPair is the JSON object the model is asked to produce
type generatedPair struct {
	ImposterWord string `json:"imposterWord"`
	Hint         string `json:"hint"`
}

// Produce requests a completion and validates the returned JSON
func (s *AISource) Produce(ctx context.Context) (*model.WordPair, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.chatModel,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: s.userPrompt()},
		},
	})
	if err != nil {
		s.logger.Error("chat completion failed",
			"category", s.category,
			"difficulty", s.difficulty,
			"model", s.chatModel,
			"error", err)
		if strings.Contains(strings.ToLower(err.Error()), "quota") {
			return nil, fmt.Errorf("%w: %v", model.ErrQuotaExceeded, err)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", model.ErrGeneration)
	}

	var pair generatedPair
	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &pair); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", model.ErrGeneration, err)
	}

	pair.ImposterWord = strings.TrimSpace(pair.ImposterWord)
	if pair.ImposterWord == "" {
		return nil, fmt.Errorf("%w: response missing word", model.ErrGeneration)
	}

	s.logger.Info("word generated",
		"category", s.category,
		"difficulty", s.difficulty,
		"model", s.chatModel)

	return &model.WordPair{
		Word: pair.ImposterWord,
		Hint: strings.TrimSpace(pair.Hint),
	}, nil
}
