package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imposterparty/imposterparty/internal/api/handler"
	"github.com/imposterparty/imposterparty/internal/api/middleware"
	"github.com/imposterparty/imposterparty/internal/services/roster"
	"github.com/imposterparty/imposterparty/internal/services/session"
	"github.com/imposterparty/imposterparty/internal/services/wordsource"
	"github.com/imposterparty/imposterparty/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	RosterController  *roster.Controller
	SessionController *session.Controller
	WordClient        wordsource.Completer
	HubManager        *sse.HubManager
	ShareBaseURL      string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	wordHandler := handler.NewWordHandler(cfg.WordClient, cfg.Logger)
	rosterHandler := handler.NewRosterHandler(cfg.RosterController)
	gameHandler := handler.NewGameHandler(
		cfg.SessionController,
		cfg.RosterController,
		cfg.HubManager,
		cfg.ShareBaseURL,
		cfg.Logger,
	)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Word generation
	api.HandleFunc("/words/generate", wordHandler.Generate).Methods(http.MethodPost)

	// Roster draft routes
	api.HandleFunc("/rosters", rosterHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rosters/{id}", rosterHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rosters/{id}", rosterHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/rosters/{id}/players", rosterHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/rosters/{id}/players/{player_id}", rosterHandler.RemovePlayer).Methods(http.MethodDelete)

	// Game session routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/reveal", gameHandler.Reveal).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/end", gameHandler.End).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/events", gameHandler.Events).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/qr", gameHandler.QR).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
