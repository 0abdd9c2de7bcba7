// Package recommend turns a logged mood into tracks and playlists via the
// Spotify integration. Retrieval is two-tiered: the recommendation endpoint
// is precise but historically flaky, so any primary failure falls back to a
// plain single-genre catalog search, trading precision for availability.
package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/justestif/moodtunes/internal/mood"
	"github.com/justestif/moodtunes/internal/spotify"
)

// TrackSource is the provider surface the orchestrator needs. A
// *spotify.Client built from the user's access token satisfies it.
type TrackSource interface {
	Recommend(ctx context.Context, p mood.RecommendationParams) ([]spotify.Track, error)
	SearchTracks(ctx context.Context, query string, limit int, market string) ([]spotify.Track, error)
	FilterSeedGenres(ctx context.Context, genres []string) []string
	CreatePlaylist(ctx context.Context, accountID, name, description string, public bool) (spotify.Playlist, error)
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error
}

// Service orchestrates track retrieval and playlist assembly. It is
// stateless; the per-user TrackSource is passed in per call.
type Service struct {
	log zerolog.Logger
}

// New creates a Service.
func New(log zerolog.Logger) *Service {
	return &Service{log: log}
}

// TrackRequest describes one retrieval request.
type TrackRequest struct {
	Mood       mood.Category
	Intensity  mood.Intensity
	UserGenres []string
	Limit      int
	Market     string
}

func (r TrackRequest) limit() int {
	if r.Limit > 0 {
		return r.Limit
	}
	return mood.DefaultLimit
}

func (r TrackRequest) market() string {
	if r.Market != "" {
		return r.Market
	}
	return mood.DefaultMarket
}

// GetTracks retrieves tracks for a mood. Tier 1 queries the recommendation
// endpoint with seed genres and target audio features; any failure there,
// including an empty result, falls back to a tier-2 single-genre search.
// An empty tier-2 result is a valid zero-track outcome, not an error.
func (s *Service) GetTracks(ctx context.Context, src TrackSource, req TrackRequest) ([]spotify.Track, error) {
	params := mood.BuildParams(req.Mood, req.Intensity, req.UserGenres)
	params.Limit = req.limit()
	params.Market = req.market()
	params.SeedGenres = src.FilterSeedGenres(ctx, params.SeedGenres)

	tracks, err := src.Recommend(ctx, params)
	if err == nil && len(tracks) > 0 {
		return tracks, nil
	}

	if err != nil {
		s.log.Warn().Err(err).
			Str("mood", string(req.Mood)).
			Msg("recommendation request failed, falling back to genre search")
	} else {
		s.log.Debug().
			Str("mood", string(req.Mood)).
			Msg("empty recommendation result, falling back to genre search")
	}

	return s.fallbackSearch(ctx, src, req)
}

// fallbackSearch runs the tier-2 retrieval: a catalog search scoped to a
// single genre, with no keyword terms.
func (s *Service) fallbackSearch(ctx context.Context, src TrackSource, req TrackRequest) ([]spotify.Track, error) {
	genre := fallbackGenre(req)

	tracks, err := src.SearchTracks(ctx, fmt.Sprintf("genre:%q", genre), req.limit(), req.market())
	if err != nil {
		return nil, fmt.Errorf("fallback genre search: %w", err)
	}
	return tracks, nil
}

// fallbackGenre picks the single genre for tier-2: the user's first
// preferred genre when present, otherwise the mood profile's first genre.
func fallbackGenre(req TrackRequest) string {
	if len(req.UserGenres) > 0 && req.UserGenres[0] != "" {
		return req.UserGenres[0]
	}
	return mood.ProfileFor(req.Mood).Genres[0]
}

// SearchByMoodText runs a single-tier literal text search combining the
// mood's first genre and first keyword. Used by the search endpoint; it
// never invokes the fallback chain.
func (s *Service) SearchByMoodText(ctx context.Context, src TrackSource, req TrackRequest) ([]spotify.Track, error) {
	profile := mood.ScaleFor(req.Mood, req.Intensity)

	query := profile.Genres[0]
	if len(req.UserGenres) > 0 && req.UserGenres[0] != "" {
		query = req.UserGenres[0]
	}
	if len(profile.Keywords) > 0 {
		query += " " + profile.Keywords[0]
	}

	tracks, err := src.SearchTracks(ctx, query, req.limit(), req.market())
	if err != nil {
		return nil, fmt.Errorf("mood text search: %w", err)
	}
	return tracks, nil
}
