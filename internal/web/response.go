package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/justestif/moodtunes/internal/apperrors"
	"github.com/justestif/moodtunes/internal/db"
	"github.com/justestif/moodtunes/internal/recommend"
	"github.com/justestif/moodtunes/internal/token"
)

// errorResponse wraps the error payload.
type errorResponse struct {
	Error apperrors.Body `json:"error"`
}

// writeJSON sends a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto the API error taxonomy and writes the
// payload. Unrecognized errors are logged and surfaced as internal errors.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	appErr := toAppError(err)
	if appErr.Err != nil {
		log.Error().Err(appErr.Err).Str("code", string(appErr.Code)).Msg("request failed")
	}
	writeJSON(w, appErr.Status, errorResponse{Error: appErr.Body()})
}

// toAppError translates core sentinel errors into the HTTP taxonomy.
func toAppError(err error) *apperrors.Error {
	switch {
	case errors.Is(err, token.ErrNotConnected):
		return apperrors.NewNotConnected()
	case errors.Is(err, token.ErrRefreshFailed):
		return apperrors.NewTokenRefreshFailed(err)
	case errors.Is(err, recommend.ErrNoTracks):
		return apperrors.NewNoTracksFound()
	case errors.Is(err, db.ErrNotFound):
		return apperrors.NewNotFound("resource not found")
	default:
		return apperrors.Ensure(err)
	}
}

// providerError classifies a failed provider call. Errors that already map
// to a specific taxonomy entry pass through; anything else becomes an
// upstream failure rather than an internal error.
func providerError(err error) error {
	switch {
	case errors.Is(err, token.ErrNotConnected),
		errors.Is(err, token.ErrRefreshFailed),
		errors.Is(err, recommend.ErrNoTracks),
		errors.Is(err, db.ErrNotFound):
		return err
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.NewProviderError(err)
}
