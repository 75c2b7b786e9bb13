package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/imposterparty/imposterparty/internal/api/request"
	"github.com/imposterparty/imposterparty/internal/api/response"
	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/services/roster"
	"github.com/imposterparty/imposterparty/internal/services/session"
	"github.com/imposterparty/imposterparty/internal/sse"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	sessionController *session.Controller
	rosterController  *roster.Controller
	hubManager        *sse.HubManager
	broadcaster       *sse.Broadcaster
	shareBaseURL      string
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	sessionController *session.Controller,
	rosterController *roster.Controller,
	hubManager *sse.HubManager,
	shareBaseURL string,
	logger *slog.Logger,
) *GameHandler {
	var broadcaster *sse.Broadcaster
	if hubManager != nil {
		broadcaster = sse.NewBroadcaster(hubManager, logger)
	}
	return &GameHandler{
		sessionController: sessionController,
		rosterController:  rosterController,
		hubManager:        hubManager,
		broadcaster:       broadcaster,
		shareBaseURL:      shareBaseURL,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	players, gameMasterID, err := h.resolveRoster(r, &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.sessionController.Create(r.Context(), players, gameMasterID, req.Word, req.Hint)
	if err != nil {
		WriteError(w, err)
		return
	}

	// The draft has served its purpose; the session's snapshot is the
	// authority now
	if req.RosterID != "" {
		_ = h.rosterController.DeleteDraft(r.Context(), model.DraftID(req.RosterID))
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

func (h *GameHandler) resolveRoster(r *http.Request, req *request.CreateGameRequest) ([]model.Player, model.PlayerID, error) {
	switch {
	case req.RosterID != "" && len(req.Players) > 0:
		return nil, "", NewInvalidRequestError("Provide either roster_id or players, not both")

	case req.RosterID != "":
		draft, err := h.rosterController.GetDraft(r.Context(), model.DraftID(req.RosterID))
		if err != nil {
			return nil, "", err
		}
		return draft.Players, draft.GameMasterID, nil

	case len(req.Players) > 0:
		players := make([]model.Player, len(req.Players))
		for i, p := range req.Players {
			players[i] = model.Player{ID: model.PlayerID(p.ID), Name: p.Name}
		}
		gameMasterID := model.PlayerID(req.GameMasterID)
		if gameMasterID == "" {
			gameMasterID = players[0].ID
		}
		return players, gameMasterID, nil

	default:
		return nil, "", NewInvalidRequestError("Provide roster_id or players")
	}
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	game, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Reveal handles POST /api/v1/games/{id}/reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	game, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	reveal, err := h.sessionController.ResolveRole(game, model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RevealFromService(reveal))
}

// End handles POST /api/v1/games/{id}/end
func (h *GameHandler) End(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	game, err := h.sessionController.EndGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastGameOver(game)
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Events handles GET /api/v1/games/{id}/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	// A missing game is a normal 404 before the stream starts
	game, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, sse.SessionSnapshot(game))
}

// QR handles GET /api/v1/games/{id}/qr
// Returns a PNG QR code encoding the game's share link
func (h *GameHandler) QR(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	exists, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	link := fmt.Sprintf("%s/play?gameId=%s", h.shareBaseURL, exists.ID)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		WriteError(w, NewInternalError())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
