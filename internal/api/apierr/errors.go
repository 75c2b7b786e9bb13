package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imposterparty/imposterparty/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidCategory    = "INVALID_CATEGORY"
	CodeInvalidDifficulty  = "INVALID_DIFFICULTY"
	CodeInvalidWord        = "INVALID_WORD"
	CodeEmptyName          = "EMPTY_NAME"
	CodeDraftNotFound      = "DRAFT_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeIdentityMismatch   = "IDENTITY_MISMATCH"
	CodeGameMasterRemoval  = "GAME_MASTER_REMOVAL"
	CodeTooFewPlayers      = "TOO_FEW_PLAYERS"
	CodePlayerNotInSession = "PLAYER_NOT_IN_SESSION"
	CodeGenerationFailed   = "GENERATION_FAILED"
	CodeQuotaExceeded      = "QUOTA_EXCEEDED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrDraftNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeDraftNotFound, "Roster draft not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrIdentityMismatch):
		return &httpError{http.StatusNotFound, APIError{CodeIdentityMismatch, "No player with that id in this game"}}
	case errors.Is(err, model.ErrGameMasterRemoval):
		return &httpError{http.StatusConflict, APIError{CodeGameMasterRemoval, "The game master cannot be removed"}}
	case errors.Is(err, model.ErrTooFewPlayers):
		return &httpError{http.StatusConflict, APIError{CodeTooFewPlayers, "At least two players are required"}}
	case errors.Is(err, model.ErrPlayerNotInSession):
		return &httpError{http.StatusBadRequest, APIError{CodePlayerNotInSession, "Player is not on the roster"}}
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Name must not be empty"}}
	case errors.Is(err, model.ErrInvalidCategory):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCategory, "Category must be at least 2 characters"}}
	case errors.Is(err, model.ErrInvalidDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "Difficulty must be easy, medium or hard"}}
	case errors.Is(err, model.ErrInvalidWord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWord, "Word must be at least 2 characters"}}

	// Quota before the generic generation error; ErrQuotaExceeded wraps are more specific
	case errors.Is(err, model.ErrQuotaExceeded):
		return &httpError{http.StatusTooManyRequests, APIError{CodeQuotaExceeded, "Word generation quota exhausted"}}
	case errors.Is(err, model.ErrGeneration):
		return &httpError{http.StatusBadGateway, APIError{CodeGenerationFailed, "Word generation failed"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
