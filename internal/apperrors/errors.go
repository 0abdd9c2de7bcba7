// Package apperrors defines the HTTP-facing error taxonomy for the API.
package apperrors

import "net/http"

// Code identifies an error category to API clients.
type Code string

const (
	CodeInternal           Code = "INTERNAL_ERROR"
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeNotFound           Code = "NOT_FOUND"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeNotConnected       Code = "SPOTIFY_NOT_CONNECTED"
	CodeTokenRefreshFailed Code = "SPOTIFY_TOKEN_REFRESH_FAILED"
	CodeProviderError      Code = "SPOTIFY_REQUEST_FAILED"
	CodeNoTracksFound      Code = "NO_TRACKS_FOUND"
	CodePremiumRequired    Code = "SPOTIFY_PREMIUM_REQUIRED"
)

// Error carries the code, client-facing message and HTTP status for a
// failure, optionally wrapping the underlying cause.
type Error struct {
	Code    Code
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Body is the serialized error payload.
type Body struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// Body returns the payload written to clients.
func (e *Error) Body() Body {
	return Body{Code: e.Code, Message: e.Message}
}

// New builds an Error with an explicit code, message and status.
func New(code Code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

func NewValidation(message string) *Error {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func NewNotFound(message string) *Error {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewUnauthorized(message string) *Error {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

// NewNotConnected is the user-actionable "connect your Spotify account"
// condition.
func NewNotConnected() *Error {
	return New(CodeNotConnected, "Spotify account not connected", http.StatusBadRequest)
}

// NewTokenRefreshFailed signals a rejected refresh grant; the user must
// reconnect their account.
func NewTokenRefreshFailed(err error) *Error {
	e := New(CodeTokenRefreshFailed, "Spotify session expired, please reconnect your account", http.StatusBadGateway)
	e.Err = err
	return e
}

// NewProviderError wraps a failed Spotify call that has no fallback.
func NewProviderError(err error) *Error {
	e := New(CodeProviderError, "Spotify request failed", http.StatusBadGateway)
	e.Err = err
	return e
}

// NewNoTracksFound signals that both retrieval tiers came back empty.
func NewNoTracksFound() *Error {
	return New(CodeNoTracksFound, "no tracks found for this mood", http.StatusNotFound)
}

// NewPremiumRequired rejects playback operations for non-premium accounts
// before any provider call is made.
func NewPremiumRequired() *Error {
	return New(CodePremiumRequired, "Spotify Premium is required for playback control", http.StatusForbidden)
}

func NewInternal(err error) *Error {
	e := New(CodeInternal, "internal server error", http.StatusInternalServerError)
	e.Err = err
	return e
}

// Ensure converts an arbitrary error into an *Error, defaulting to an
// internal error for unrecognized causes.
func Ensure(err error) *Error {
	if err == nil {
		return NewInternal(nil)
	}
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return NewInternal(err)
}
