package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/imposterparty/imposterparty/internal/api/request"
	"github.com/imposterparty/imposterparty/internal/api/response"
	"github.com/imposterparty/imposterparty/internal/model"
	"github.com/imposterparty/imposterparty/internal/services/wordsource"
)

// WordHandler handles word generation endpoints
type WordHandler struct {
	client wordsource.Completer
	logger *slog.Logger
}

// NewWordHandler creates a new word handler. The client may be nil
// when no generation provider is configured; only the manual source
// works in that case.
func NewWordHandler(client wordsource.Completer, logger *slog.Logger) *WordHandler {
	return &WordHandler{
		client: client,
		logger: logger,
	}
}

// Generate handles POST /api/v1/words/generate
func (h *WordHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	source, err := h.buildSource(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	pair, err := source.Produce(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordPairFromModel(pair))
}

func (h *WordHandler) buildSource(req request.GenerateWordRequest) (wordsource.Source, error) {
	switch req.Source {
	case "ai":
		if h.client == nil {
			return nil, NewInvalidRequestError("Word generation is not configured on this server")
		}
		return wordsource.NewAISource(h.client, req.Category, model.Difficulty(req.Difficulty), req.Model, h.logger)
	case "manual":
		return wordsource.NewManualSource(req.Word, req.Hint)
	default:
		return nil, NewInvalidRequestError("Source must be \"ai\" or \"manual\"")
	}
}
