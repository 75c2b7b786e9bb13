package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imposterparty/imposterparty/internal/api"
	"github.com/imposterparty/imposterparty/internal/api/response"
	"github.com/imposterparty/imposterparty/internal/factory"
	"github.com/imposterparty/imposterparty/internal/services/wordsource"
)

// stubCompleter stands in for the generation provider
type stubCompleter struct {
	content string
	err     error
}

func (c *stubCompleter) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: c.content}},
		},
	}, nil
}

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T, wordStub *stubCompleter) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	// Avoid wrapping a typed-nil *stubCompleter in the interface field:
	// a nil stub must present as a nil Completer to the router.
	var wordClient wordsource.Completer
	if wordStub != nil {
		wordClient = wordStub
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		RosterController:  app.RosterController,
		SessionController: app.SessionController,
		WordClient:        wordClient,
		HubManager:        app.HubManager,
		ShareBaseURL:      "http://example.test",
	})

	return &testServer{
		handler: router,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createRoster builds a three-player roster via the API
func (ts *testServer) createRoster(t *testing.T) response.Roster {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/rosters", map[string]string{"game_master_name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var roster response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roster))

	for _, name := range []string{"Bob", "Carol"} {
		rr = ts.request(http.MethodPost, "/api/v1/rosters/"+roster.ID+"/players", map[string]string{"name": name})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr = ts.request(http.MethodGet, "/api/v1/rosters/"+roster.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roster))
	return roster
}

// createGame builds a full session from a roster via the API
func (ts *testServer) createGame(t *testing.T) response.Game {
	t.Helper()

	roster := ts.createRoster(t)
	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{
		"roster_id": roster.ID,
		"word":      "lighthouse",
		"hint":      "tall and coastal",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return game
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

// Word generation

func TestGenerateWordManual(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/words/generate", map[string]string{
		"source": "manual",
		"word":   "lighthouse",
		"hint":   "tall and coastal",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var pair response.WordPair
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pair))
	assert.Equal(t, "lighthouse", pair.Word)
	assert.Equal(t, "tall and coastal", pair.Hint)
}

func TestGenerateWordManualTooShort(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/words/generate", map[string]string{
		"source": "manual",
		"word":   "x",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_WORD")
}

func TestGenerateWordAI(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{content: `{"imposterWord": "otter", "hint": "it swims"}`})

	rr := ts.request(http.MethodPost, "/api/v1/words/generate", map[string]string{
		"source":     "ai",
		"category":   "animals",
		"difficulty": "easy",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var pair response.WordPair
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pair))
	assert.Equal(t, "otter", pair.Word)
	assert.Equal(t, "it swims", pair.Hint)
}

func TestGenerateWordAIInvalidDifficulty(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{content: `{"imposterWord": "otter"}`})

	rr := ts.request(http.MethodPost, "/api/v1/words/generate", map[string]string{
		"source":     "ai",
		"category":   "animals",
		"difficulty": "impossible",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_DIFFICULTY")
}

func TestGenerateWordAINotConfigured(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/words/generate", map[string]string{
		"source":     "ai",
		"category":   "animals",
		"difficulty": "easy",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateWordUnknownSource(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/words/generate", map[string]string{
		"source": "oracle",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Roster drafts

func TestRosterFlow(t *testing.T) {
	ts := newTestServer(t, nil)

	roster := ts.createRoster(t)
	require.Len(t, roster.Players, 3)
	assert.Equal(t, "Alice", roster.Players[0].Name)
	assert.Equal(t, "Bob", roster.Players[1].Name)
	assert.Equal(t, "Carol", roster.Players[2].Name)
	assert.Equal(t, roster.Players[0].ID, roster.GameMasterID)
	assert.Len(t, roster.Players[1].ID, 6)
}

func TestRosterDuplicateNameNotAdded(t *testing.T) {
	ts := newTestServer(t, nil)
	roster := ts.createRoster(t)

	rr := ts.request(http.MethodPost, "/api/v1/rosters/"+roster.ID+"/players", map[string]string{"name": "bOB"})
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Len(t, updated.Players, 3)
}

func TestRosterBlankNameIsNoOp(t *testing.T) {
	ts := newTestServer(t, nil)
	roster := ts.createRoster(t)

	rr := ts.request(http.MethodPost, "/api/v1/rosters/"+roster.ID+"/players", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Len(t, updated.Players, 3)
}

func TestRosterRemovePlayer(t *testing.T) {
	ts := newTestServer(t, nil)
	roster := ts.createRoster(t)

	rr := ts.request(http.MethodDelete, "/api/v1/rosters/"+roster.ID+"/players/"+roster.Players[1].ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Len(t, updated.Players, 2)
}

func TestRosterRemoveGameMaster(t *testing.T) {
	ts := newTestServer(t, nil)
	roster := ts.createRoster(t)

	rr := ts.request(http.MethodDelete, "/api/v1/rosters/"+roster.ID+"/players/"+roster.GameMasterID, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_MASTER_REMOVAL")
}

func TestRosterNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/rosters/NOPE99", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "DRAFT_NOT_FOUND")
}

// Game sessions

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t, nil)

	game := ts.createGame(t)
	assert.Len(t, game.ID, 6)
	assert.Len(t, game.Players, 3)
	assert.False(t, game.IsGameOver)
	assert.NotEmpty(t, game.StartingPlayerID)

	// Secrets are withheld while the game is live
	assert.Empty(t, game.ImposterWord)
	assert.Empty(t, game.ImposterID)
}

func TestCreateGameDeletesDraft(t *testing.T) {
	ts := newTestServer(t, nil)
	roster := ts.createRoster(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{
		"roster_id": roster.ID,
		"word":      "lighthouse",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/rosters/"+roster.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateGameTooFewPlayers(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/rosters", map[string]string{"game_master_name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var roster response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roster))

	rr = ts.request(http.MethodPost, "/api/v1/games", map[string]string{
		"roster_id": roster.ID,
		"word":      "lighthouse",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "TOO_FEW_PLAYERS")

	// Failed creation must not consume the draft
	rr = ts.request(http.MethodGet, "/api/v1/rosters/"+roster.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateGameInlinePlayers(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"players": []map[string]string{
			{"id": "PLYR01", "name": "Alice"},
			{"id": "PLYR02", "name": "Bob"},
		},
		"word": "lighthouse",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Equal(t, "PLYR01", game.GameMasterID)
}

func TestCreateGameMissingRoster(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]string{"word": "lighthouse"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/NOPE99", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

// Reveal

func TestRevealRoles(t *testing.T) {
	ts := newTestServer(t, nil)
	game := ts.createGame(t)

	imposters := 0
	for _, p := range game.Players {
		rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/reveal", map[string]string{"player_id": p.ID})
		require.Equal(t, http.StatusOK, rr.Code)

		var reveal response.Reveal
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reveal))
		assert.Equal(t, p.ID, reveal.Player.ID)

		if reveal.IsImposter {
			imposters++
			assert.Equal(t, "tall and coastal", reveal.Payload)
		} else {
			assert.Equal(t, "lighthouse", reveal.Payload)
		}
	}
	assert.Equal(t, 1, imposters)
}

func TestRevealCaseInsensitive(t *testing.T) {
	ts := newTestServer(t, nil)
	game := ts.createGame(t)

	claimed := strings.ToLower(game.Players[1].ID)
	rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/reveal", map[string]string{"player_id": claimed})
	assert.Equal(t, http.StatusOK, rr.Code)

	var reveal response.Reveal
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reveal))
	assert.Equal(t, game.Players[1].ID, reveal.Player.ID)
}

func TestRevealIdentityMismatch(t *testing.T) {
	ts := newTestServer(t, nil)
	game := ts.createGame(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/reveal", map[string]string{"player_id": "NOPE99"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "IDENTITY_MISMATCH")
}

// End game

func TestEndGame(t *testing.T) {
	ts := newTestServer(t, nil)
	game := ts.createGame(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/end", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var ended response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ended))
	assert.True(t, ended.IsGameOver)

	// At game over the reveal is public
	assert.Equal(t, "lighthouse", ended.ImposterWord)
	assert.NotEmpty(t, ended.ImposterID)
	assert.NotEmpty(t, ended.ImposterName)
	require.NotNil(t, ended.EndedAt)
}

func TestEndGameIdempotent(t *testing.T) {
	ts := newTestServer(t, nil)
	game := ts.createGame(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/end", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var first response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &first))

	rr = ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/end", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var second response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &second))

	assert.True(t, second.IsGameOver)
	assert.Equal(t, first.EndedAt, second.EndedAt)
}

func TestEndGameNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/NOPE99/end", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// QR share links

func TestGameQR(t *testing.T) {
	ts := newTestServer(t, nil)
	game := ts.createGame(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+game.ID+"/qr", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Body.Bytes())
}

func TestGameQRNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/NOPE99/qr", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// SSE events

func TestGameEventsNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/NOPE99/events", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameEventsInitialSnapshot(t *testing.T) {
	ts := newTestServer(t, nil)
	game := ts.createGame(t)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/"+game.ID+"/events", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		ts.handler.ServeHTTP(rr, req)
		close(done)
	}()

	// Give the stream time to write the initial snapshot, then hang up
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SSE handler did not return after client disconnect")
	}

	body := rr.Body.String()
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: session-update")
	assert.Contains(t, body, game.ID)
	assert.NotContains(t, body, "lighthouse")
}
