package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/justestif/moodtunes/internal/analytics"
	"github.com/justestif/moodtunes/internal/apperrors"
	"github.com/justestif/moodtunes/internal/db"
	"github.com/justestif/moodtunes/internal/mood"
	"github.com/justestif/moodtunes/internal/recommend"
	spotifyapi "github.com/justestif/moodtunes/internal/spotify"
	"github.com/justestif/moodtunes/internal/token"
)

const (
	oauthStateCookie = "oauth_state"
	oauthUserCookie  = "oauth_user"
	oauthCookieTTL   = 300 // seconds

	defaultListLimit = 50
	maxListLimit     = 200
	summaryWindow    = 500
)

// spotifySource is the per-request provider surface. A *spotifyapi.Client
// built from the user's access token satisfies it.
type spotifySource interface {
	recommend.TrackSource
	CurrentAccount(ctx context.Context) (spotifyapi.Account, error)
	Play(ctx context.Context, trackURIs []string) error
	Pause(ctx context.Context) error
}

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	database       *db.DB
	tokens         *token.Manager
	recommender    *recommend.Service
	auth           *spotifyauth.Authenticator
	spotifyEnabled bool
	log            zerolog.Logger

	// newSource builds the provider client for an access token; replaced
	// in tests.
	newSource func(ctx context.Context, accessToken string) spotifySource
}

// NewHandlers creates a Handlers instance.
func NewHandlers(database *db.DB, tokens *token.Manager, recommender *recommend.Service, auth *spotifyauth.Authenticator, spotifyEnabled bool, log zerolog.Logger) *Handlers {
	return &Handlers{
		database:       database,
		tokens:         tokens,
		recommender:    recommender,
		auth:           auth,
		spotifyEnabled: spotifyEnabled,
		log:            log,
		newSource: func(ctx context.Context, accessToken string) spotifySource {
			return spotifyapi.NewWithToken(ctx, accessToken)
		},
	}
}

// Health reports liveness (GET /v1/health).
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ============================================================================
// Spotify account linking
// ============================================================================

// SpotifyConnect starts the OAuth flow (GET /v1/spotify/connect).
func (h *Handlers) SpotifyConnect(w http.ResponseWriter, r *http.Request) {
	if !h.spotifyEnabled {
		writeError(w, h.log, apperrors.New(apperrors.CodeProviderError,
			"Spotify integration is not configured", http.StatusServiceUnavailable))
		return
	}

	state, err := generateOAuthState()
	if err != nil {
		writeError(w, h.log, apperrors.NewInternal(err))
		return
	}

	// State and user id round-trip through cookies; the provider redirect
	// carries no bearer token.
	setOAuthCookie(w, oauthStateCookie, state)
	setOAuthCookie(w, oauthUserCookie, UserID(r.Context()))

	writeJSON(w, http.StatusOK, map[string]string{"auth_url": h.auth.AuthURL(state)})
}

// SpotifyCallback handles the OAuth redirect (GET /v1/spotify/callback).
// This route is public; identity comes from the cookie set by connect.
func (h *Handlers) SpotifyCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil {
		writeError(w, h.log, apperrors.NewValidation("missing oauth state cookie"))
		return
	}
	if r.URL.Query().Get("state") != stateCookie.Value {
		writeError(w, h.log, apperrors.NewValidation("oauth state mismatch"))
		return
	}

	userCookie, err := r.Cookie(oauthUserCookie)
	if err != nil || userCookie.Value == "" {
		writeError(w, h.log, apperrors.NewValidation("missing oauth user cookie"))
		return
	}
	userID := userCookie.Value

	clearOAuthCookie(w, oauthStateCookie)
	clearOAuthCookie(w, oauthUserCookie)

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		writeError(w, h.log, apperrors.New(apperrors.CodeProviderError,
			"Spotify authorization denied: "+errMsg, http.StatusBadGateway))
		return
	}

	// The credential is stored on the user row, so the row must exist
	// before the exchange persists.
	if err := h.database.Users().EnsureExists(r.Context(), userID); err != nil {
		writeError(w, h.log, err)
		return
	}

	cred, err := h.tokens.Connect(r.Context(), userID, r.URL.Query().Get("code"))
	if err != nil {
		writeError(w, h.log, providerError(err))
		return
	}

	// Record the linked account id and premium flag for later calls.
	src := h.newSource(r.Context(), cred.AccessToken)
	account, err := src.CurrentAccount(r.Context())
	if err != nil {
		writeError(w, h.log, providerError(err))
		return
	}

	user := &db.User{ID: userID, DisplayName: account.DisplayName, Email: account.Email}
	if err := h.database.Users().Upsert(r.Context(), user); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.database.Users().SaveSpotifyAccount(r.Context(), userID, account.ID, account.Premium()); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"connected": true,
		"account":   account,
	})
}

// SpotifyStatus reports the integration state (GET /v1/spotify/status).
func (h *Handlers) SpotifyStatus(w http.ResponseWriter, r *http.Request) {
	user, err := h.database.Users().Get(r.Context(), UserID(r.Context()))
	if errors.Is(err, db.ErrNotFound) {
		writeJSON(w, http.StatusOK, map[string]any{"connected": false})
		return
	}
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	resp := map[string]any{
		"connected": user.Connected(),
		"premium":   user.Premium,
	}
	if user.SpotifyAccountID != nil {
		resp["spotify_account_id"] = *user.SpotifyAccountID
	}
	if user.TokenExpiry != nil {
		resp["token_expiry"] = user.TokenExpiry
	}
	writeJSON(w, http.StatusOK, resp)
}

// SpotifyDisconnect clears the stored credential (DELETE /v1/spotify).
func (h *Handlers) SpotifyDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.tokens.Disconnect(r.Context(), UserID(r.Context())); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"connected": false})
}

// ============================================================================
// Mood entries
// ============================================================================

type createMoodRequest struct {
	Mood            string   `json:"mood"`
	Intensity       int      `json:"intensity"`
	PreferredGenres []string `json:"preferred_genres"`
	Note            string   `json:"note"`
}

type moodEntryResponse struct {
	ID              uuid.UUID `json:"id"`
	Mood            string    `json:"mood"`
	Intensity       int       `json:"intensity"`
	PreferredGenres []string  `json:"preferred_genres"`
	Note            string    `json:"note,omitempty"`
	PlaylistID      string    `json:"playlist_id,omitempty"`
	PlaylistURL     string    `json:"playlist_url,omitempty"`
	SongsGenerated  int       `json:"songs_generated,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toMoodEntryResponse(e db.MoodEntry) moodEntryResponse {
	resp := moodEntryResponse{
		ID:              e.ID,
		Mood:            e.MoodType,
		Intensity:       e.Intensity,
		PreferredGenres: e.PreferredGenres,
		CreatedAt:       e.CreatedAt,
	}
	if e.Note != nil {
		resp.Note = *e.Note
	}
	if e.PlaylistID != nil {
		resp.PlaylistID = *e.PlaylistID
	}
	if e.PlaylistURL != nil {
		resp.PlaylistURL = *e.PlaylistURL
	}
	if e.SongsGenerated != nil {
		resp.SongsGenerated = *e.SongsGenerated
	}
	return resp
}

// CreateMood logs a mood entry and returns it together with the scaled
// music profile derived from it (POST /v1/moods).
func (h *Handlers) CreateMood(w http.ResponseWriter, r *http.Request) {
	var req createMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, apperrors.NewValidation("invalid request body"))
		return
	}

	category, err := mood.ParseCategory(req.Mood)
	if err != nil {
		writeError(w, h.log, apperrors.NewValidation(err.Error()))
		return
	}
	intensity := mood.Intensity(req.Intensity)
	if !intensity.Valid() {
		writeError(w, h.log, apperrors.NewValidation("intensity must be between 1 and 4"))
		return
	}

	userID := UserID(r.Context())
	if err := h.database.Users().EnsureExists(r.Context(), userID); err != nil {
		writeError(w, h.log, err)
		return
	}

	entry := &db.MoodEntry{
		UserID:          userID,
		MoodType:        string(category),
		Intensity:       int(intensity),
		PreferredGenres: req.PreferredGenres,
	}
	if req.Note != "" {
		entry.Note = &req.Note
	}
	if entry.PreferredGenres == nil {
		entry.PreferredGenres = []string{}
	}

	if err := h.database.Moods().Create(r.Context(), entry); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"mood":          toMoodEntryResponse(*entry),
		"music_profile": mood.ScaleFor(category, intensity),
	})
}

// ListMoods returns the user's entries, newest first (GET /v1/moods).
func (h *Handlers) ListMoods(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}

	entries, err := h.database.Moods().ListForUser(r.Context(), UserID(r.Context()), limit)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	moods := make([]moodEntryResponse, len(entries))
	for i, e := range entries {
		moods[i] = toMoodEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"moods": moods})
}

// MoodSummary returns the analytics view of the user's history
// (GET /v1/moods/summary).
func (h *Handlers) MoodSummary(w http.ResponseWriter, r *http.Request) {
	records, err := h.database.Moods().ListForUser(r.Context(), UserID(r.Context()), summaryWindow)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	entries := make([]analytics.Entry, 0, len(records))
	for _, rec := range records {
		category, err := mood.ParseCategory(rec.MoodType)
		if err != nil {
			continue // ignore rows from removed categories
		}
		entries = append(entries, analytics.Entry{
			Mood:      category,
			Intensity: mood.Intensity(rec.Intensity),
			CreatedAt: rec.CreatedAt,
		})
	}

	summary := analytics.Summarize(entries, time.Now())
	summary.Phases = analytics.DetectPhases(entries, analytics.DefaultPhaseCount)
	writeJSON(w, http.StatusOK, summary)
}

// ============================================================================
// Playlist generation and search
// ============================================================================

type generatePlaylistRequest struct {
	Name  string `json:"name"`
	Limit int    `json:"limit"`
}

// GeneratePlaylist assembles a playlist for a mood entry and writes the
// result back onto it (POST /v1/moods/{id}/playlist).
func (h *Handlers) GeneratePlaylist(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, apperrors.NewValidation("invalid mood entry id"))
		return
	}

	var req generatePlaylistRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // body is optional
	}

	userID := UserID(r.Context())
	entry, err := h.database.Moods().Get(r.Context(), entryID, userID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	category, err := mood.ParseCategory(entry.MoodType)
	if err != nil {
		writeError(w, h.log, apperrors.NewInternal(err))
		return
	}

	user, err := h.database.Users().Get(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if user.SpotifyAccountID == nil {
		writeError(w, h.log, token.ErrNotConnected)
		return
	}

	accessToken, err := h.tokens.EnsureValidToken(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	src := h.newSource(r.Context(), accessToken)
	result, err := h.recommender.CreateMoodPlaylist(r.Context(), src, *user.SpotifyAccountID, recommend.PlaylistRequest{
		Mood:       category,
		Intensity:  mood.Intensity(entry.Intensity),
		UserGenres: entry.PreferredGenres,
		CustomName: req.Name,
		Limit:      req.Limit,
	})
	if err != nil {
		writeError(w, h.log, providerError(err))
		return
	}

	// Write the playlist back onto the mood record; the playlist already
	// exists on Spotify, so a writeback failure is logged but does not
	// fail the request.
	if err := h.database.Moods().SetPlaylist(r.Context(), entryID,
		result.Playlist.ID, result.Playlist.ExternalURL, len(result.Tracks)); err != nil {
		h.log.Error().Err(err).Str("mood_id", entryID.String()).Msg("playlist writeback failed")
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"playlist": map[string]any{
			"id":           result.Playlist.ID,
			"name":         result.Playlist.Name,
			"external_url": result.Playlist.ExternalURL,
			"track_count":  len(result.Tracks),
		},
		"tracks": result.Tracks,
	})
}

// SearchTracks runs the single-tier mood text search
// (GET /v1/tracks/search).
func (h *Handlers) SearchTracks(w http.ResponseWriter, r *http.Request) {
	category, err := mood.ParseCategory(r.URL.Query().Get("mood"))
	if err != nil {
		writeError(w, h.log, apperrors.NewValidation(err.Error()))
		return
	}
	intensity := mood.Intensity(queryInt(r, "intensity", int(mood.IntensityModerate)))
	if !intensity.Valid() {
		writeError(w, h.log, apperrors.NewValidation("intensity must be between 1 and 4"))
		return
	}

	var genres []string
	if raw := r.URL.Query().Get("genres"); raw != "" {
		genres = strings.Split(raw, ",")
	}

	accessToken, err := h.tokens.EnsureValidToken(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	src := h.newSource(r.Context(), accessToken)
	tracks, err := h.recommender.SearchByMoodText(r.Context(), src, recommend.TrackRequest{
		Mood:       category,
		Intensity:  intensity,
		UserGenres: genres,
		Limit:      queryInt(r, "limit", mood.DefaultLimit),
	})
	if err != nil {
		writeError(w, h.log, providerError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tracks": tracks})
}

// ============================================================================
// Playback
// ============================================================================

type playRequest struct {
	URIs []string `json:"uris"`
}

// PlayerPlay starts or resumes playback (PUT /v1/player/play). Premium is
// checked before any provider call.
func (h *Handlers) PlayerPlay(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	src, err := h.playbackSource(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := src.Play(r.Context(), req.URIs); err != nil {
		writeError(w, h.log, providerError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "playing"})
}

// PlayerPause pauses playback (PUT /v1/player/pause).
func (h *Handlers) PlayerPause(w http.ResponseWriter, r *http.Request) {
	src, err := h.playbackSource(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := src.Pause(r.Context()); err != nil {
		writeError(w, h.log, providerError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "paused"})
}

// playbackSource enforces the playback preconditions (connected account,
// premium tier) and returns a provider client for the user.
func (h *Handlers) playbackSource(r *http.Request) (spotifySource, error) {
	userID := UserID(r.Context())

	user, err := h.database.Users().Get(r.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, token.ErrNotConnected
	}
	if err != nil {
		return nil, err
	}
	if !user.Connected() {
		return nil, token.ErrNotConnected
	}
	if !user.Premium {
		return nil, apperrors.NewPremiumRequired()
	}

	accessToken, err := h.tokens.EnsureValidToken(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	return h.newSource(r.Context(), accessToken), nil
}

// ============================================================================
// Helpers
// ============================================================================

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// generateOAuthState creates a random state string for OAuth.
func generateOAuthState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func setOAuthCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   oauthCookieTTL,
	})
}

func clearOAuthCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
