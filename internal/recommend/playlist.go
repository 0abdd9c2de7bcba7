package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justestif/moodtunes/internal/mood"
	"github.com/justestif/moodtunes/internal/spotify"
)

// ErrNoTracks is returned when both retrieval tiers come back empty; no
// playlist is created in that case.
var ErrNoTracks = errors.New("no tracks found for this mood")

// PlaylistRequest describes one playlist-assembly request.
type PlaylistRequest struct {
	Mood       mood.Category
	Intensity  mood.Intensity
	UserGenres []string
	CustomName string
	Limit      int
	Market     string
}

// PlaylistResult is the created playlist plus the tracks inserted into it.
type PlaylistResult struct {
	Playlist spotify.Playlist
	Tracks   []spotify.Track
}

// CreateMoodPlaylist retrieves tracks for the mood, creates a playlist under
// the given Spotify account and inserts the tracks in provider order.
// Insertions are issued sequentially in chunks of at most 100 tracks, the
// provider's per-request limit, so playlist order matches retrieval order.
func (s *Service) CreateMoodPlaylist(ctx context.Context, src TrackSource, accountID string, req PlaylistRequest) (*PlaylistResult, error) {
	tracks, err := s.GetTracks(ctx, src, TrackRequest{
		Mood:       req.Mood,
		Intensity:  req.Intensity,
		UserGenres: req.UserGenres,
		Limit:      req.Limit,
		Market:     req.Market,
	})
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	name := req.CustomName
	if name == "" {
		name = playlistName(req.Mood, req.Intensity, time.Now())
	}

	playlist, err := src.CreatePlaylist(ctx, accountID, name, playlistDescription(req.Mood), false)
	if err != nil {
		return nil, fmt.Errorf("creating mood playlist: %w", err)
	}

	ids := make([]string, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}

	for start := 0; start < len(ids); start += spotify.MaxTracksPerAdd {
		end := min(start+spotify.MaxTracksPerAdd, len(ids))
		if err := src.AddTracks(ctx, playlist.ID, ids[start:end]); err != nil {
			return nil, fmt.Errorf("adding tracks %d-%d: %w", start+1, end, err)
		}
	}

	s.log.Info().
		Str("playlist_id", playlist.ID).
		Str("mood", string(req.Mood)).
		Int("tracks", len(tracks)).
		Msg("mood playlist created")

	return &PlaylistResult{Playlist: playlist, Tracks: tracks}, nil
}

// playlistName combines the mood label, the intensity adjective and the date.
func playlistName(c mood.Category, level mood.Intensity, now time.Time) string {
	return fmt.Sprintf("%s %s - %s", c.Label(), level.Adjective(), now.Format("Jan 2, 2006"))
}

// playlistDescription names the mood and its first three profile genres.
func playlistDescription(c mood.Category) string {
	genres := mood.ProfileFor(c).Genres
	if len(genres) > 3 {
		genres = genres[:3]
	}
	return fmt.Sprintf("Songs for a %s mood. Genres: %s.",
		strings.ToLower(c.Label()), strings.Join(genres, ", "))
}
