package wordsource

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/testutil"
)

// stubCompleter returns a canned response or error
type stubCompleter struct {
	content string
	err     error

	lastRequest openai.ChatCompletionRequest
}

func (c *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.lastRequest = req
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	if c.content == "" {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: c.content}},
		},
	}, nil
}

func TestManualSource(t *testing.T) {
	source, err := NewManualSource("  lighthouse ", " tall and coastal ")
	require.NoError(t, err)

	pair, err := source.Produce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "lighthouse", pair.Word)
	assert.Equal(t, "tall and coastal", pair.Hint)
}

func TestManualSourceNoHint(t *testing.T) {
	source, err := NewManualSource("lighthouse", "")
	require.NoError(t, err)

	pair, err := source.Produce(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pair.Hint)
}

func TestManualSourceWordTooShort(t *testing.T) {
	_, err := NewManualSource("x", "")
	assert.ErrorIs(t, err, model.ErrInvalidWord)

	_, err = NewManualSource("   ", "hint")
	assert.ErrorIs(t, err, model.ErrInvalidWord)
}

func TestAISourceValidation(t *testing.T) {
	client := &stubCompleter{}
	logger := testutil.NopLogger()

	_, err := NewAISource(client, "x", model.DifficultyEasy, "", logger)
	assert.ErrorIs(t, err, model.ErrInvalidCategory)

	_, err = NewAISource(client, "animals", "impossible", "", logger)
	assert.ErrorIs(t, err, model.ErrInvalidDifficulty)
}

func TestAISourceProduce(t *testing.T) {
	client := &stubCompleter{content: `{"imposterWord": "otter", "hint": "it swims"}`}
	source, err := NewAISource(client, "animals", model.DifficultyEasy, "", testutil.NopLogger())
	require.NoError(t, err)

	pair, err := source.Produce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "otter", pair.Word)
	assert.Equal(t, "it swims", pair.Hint)

	assert.Equal(t, DefaultModel, client.lastRequest.Model)
}

func TestAISourceCustomModel(t *testing.T) {
	client := &stubCompleter{content: `{"imposterWord": "otter"}`}
	source, err := NewAISource(client, "animals", model.DifficultyHard, "gpt-4o", testutil.NopLogger())
	require.NoError(t, err)

	_, err = source.Produce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", client.lastRequest.Model)
}

func TestAISourceProviderError(t *testing.T) {
	client := &stubCompleter{err: errors.New("upstream exploded")}
	source, err := NewAISource(client, "animals", model.DifficultyMedium, "", testutil.NopLogger())
	require.NoError(t, err)

	_, err = source.Produce(context.Background())
	assert.ErrorIs(t, err, model.ErrGeneration)
	assert.NotErrorIs(t, err, model.ErrQuotaExceeded)
}

func TestAISourceQuotaError(t *testing.T) {
	client := &stubCompleter{err: errors.New("429: you exceeded your current quota")}
	source, err := NewAISource(client, "animals", model.DifficultyMedium, "", testutil.NopLogger())
	require.NoError(t, err)

	_, err = source.Produce(context.Background())
	assert.ErrorIs(t, err, model.ErrQuotaExceeded)
}

func TestAISourceEmptyResponse(t *testing.T) {
	client := &stubCompleter{}
	source, err := NewAISource(client, "animals", model.DifficultyEasy, "", testutil.NopLogger())
	require.NoError(t, err)

	_, err = source.Produce(context.Background())
	assert.ErrorIs(t, err, model.ErrGeneration)
}

func TestAISourceMalformedJSON(t *testing.T) {
	client := &stubCompleter{content: "otter"}
	source, err := NewAISource(client, "animals", model.DifficultyEasy, "", testutil.NopLogger())
	require.NoError(t, err)

	_, err = source.Produce(context.Background())
	assert.ErrorIs(t, err, model.ErrGeneration)
}

func TestAISourceMissingWord(t *testing.T) {
	client := &stubCompleter{content: `{"hint": "it swims"}`}
	source, err := NewAISource(client, "animals", model.DifficultyEasy, "", testutil.NopLogger())
	require.NoError(t, err)

	_, err = source.Produce(context.Background())
	assert.ErrorIs(t, err, model.ErrGeneration)
}

func TestAISourcePromptMentionsDifficulty(t *testing.T) {
	client := &stubCompleter{content: `{"imposterWord": "otter"}`}
	source, err := NewAISource(client, "animals", model.DifficultyHard, "", testutil.NopLogger())
	require.NoError(t, err)

	_, err = source.Produce(context.Background())
	require.NoError(t, err)

	require.Len(t, client.lastRequest.Messages, 2)
	assert.Contains(t, client.lastRequest.Messages[1].Content, "animals")
	assert.Contains(t, client.lastRequest.Messages[1].Content, "hard")
}
