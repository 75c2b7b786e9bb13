package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imposterparty/imposterparty/internal/api/request"
	"github.com/imposterparty/imposterparty/internal/api/response"
	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/services/roster"
)

// RosterHandler handles roster draft endpoints
type RosterHandler struct {
	rosterController *roster.Controller
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterController *roster.Controller) *RosterHandler {
	return &RosterHandler{
		rosterController: rosterController,
	}
}

// Create handles POST /api/v1/rosters
func (h *RosterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	draft, err := h.rosterController.CreateDraft(r.Context(), req.GameMasterName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RosterFromModel(draft))
}

// Get handles GET /api/v1/rosters/{id}
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.DraftID(mux.Vars(r)["id"])

	draft, err := h.rosterController.GetDraft(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromModel(draft))
}

// AddPlayer handles POST /api/v1/rosters/{id}/players
func (h *RosterHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	id := model.DraftID(mux.Vars(r)["id"])

	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	draft, _, err := h.rosterController.AddPlayer(r.Context(), id, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromModel(draft))
}

// RemovePlayer handles DELETE /api/v1/rosters/{id}/players/{player_id}
func (h *RosterHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.DraftID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])

	draft, err := h.rosterController.RemovePlayer(r.Context(), id, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromModel(draft))
}

// Delete handles DELETE /api/v1/rosters/{id}
func (h *RosterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.DraftID(mux.Vars(r)["id"])

	if err := h.rosterController.DeleteDraft(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
