package handler

import (
	"net/http"

	"github.com/imposterparty/imposterparty/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeInvalidCategory    = apierr.CodeInvalidCategory
	CodeInvalidDifficulty  = apierr.CodeInvalidDifficulty
	CodeInvalidWord        = apierr.CodeInvalidWord
	CodeEmptyName          = apierr.CodeEmptyName
	CodeDraftNotFound      = apierr.CodeDraftNotFound
	CodeGameNotFound       = apierr.CodeGameNotFound
	CodePlayerNotFound     = apierr.CodePlayerNotFound
	CodeIdentityMismatch   = apierr.CodeIdentityMismatch
	CodeGameMasterRemoval  = apierr.CodeGameMasterRemoval
	CodeTooFewPlayers      = apierr.CodeTooFewPlayers
	CodePlayerNotInSession = apierr.CodePlayerNotInSession
	CodeGenerationFailed   = apierr.CodeGenerationFailed
	CodeQuotaExceeded      = apierr.CodeQuotaExceeded
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
