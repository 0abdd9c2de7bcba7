package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justestif/moodtunes/internal/mood"
	"github.com/justestif/moodtunes/internal/spotify"
)

// mockSource implements TrackSource with canned responses and call
// recording.
type mockSource struct {
	recommendTracks []spotify.Track
	recommendErr    error
	recommendCalls  int
	recommendParams []mood.RecommendationParams

	searchTracks  []spotify.Track
	searchErr     error
	searchCalls   int
	searchQueries []string

	playlist        spotify.Playlist
	createErr       error
	createCalls     int
	createdNames    []string
	addCalls        int
	addBatches      [][]string
	addErr          error
	filteredSeeds   []string
	hasFilteredSeed bool
}

func (m *mockSource) Recommend(_ context.Context, p mood.RecommendationParams) ([]spotify.Track, error) {
	m.recommendCalls++
	m.recommendParams = append(m.recommendParams, p)
	return m.recommendTracks, m.recommendErr
}

func (m *mockSource) SearchTracks(_ context.Context, query string, _ int, _ string) ([]spotify.Track, error) {
	m.searchCalls++
	m.searchQueries = append(m.searchQueries, query)
	return m.searchTracks, m.searchErr
}

func (m *mockSource) FilterSeedGenres(_ context.Context, genres []string) []string {
	if m.hasFilteredSeed {
		return m.filteredSeeds
	}
	return genres
}

func (m *mockSource) CreatePlaylist(_ context.Context, _, name, _ string, _ bool) (spotify.Playlist, error) {
	m.createCalls++
	m.createdNames = append(m.createdNames, name)
	return m.playlist, m.createErr
}

func (m *mockSource) AddTracks(_ context.Context, _ string, trackIDs []string) error {
	m.addCalls++
	batch := make([]string, len(trackIDs))
	copy(batch, trackIDs)
	m.addBatches = append(m.addBatches, batch)
	return m.addErr
}

func stubTracks(n int) []spotify.Track {
	tracks := make([]spotify.Track, n)
	for i := range tracks {
		tracks[i] = spotify.Track{
			ID:   fmt.Sprintf("track-%03d", i),
			URI:  fmt.Sprintf("spotify:track:%03d", i),
			Name: fmt.Sprintf("Track %d", i),
		}
	}
	return tracks
}

func newTestService() *Service {
	return New(zerolog.Nop())
}

func TestGetTracks_PrimarySucceeds(t *testing.T) {
	src := &mockSource{recommendTracks: stubTracks(20)}
	svc := newTestService()

	tracks, err := svc.GetTracks(context.Background(), src, TrackRequest{
		Mood: mood.Happy, Intensity: mood.IntensityHigh,
	})
	require.NoError(t, err)
	assert.Len(t, tracks, 20)
	assert.Equal(t, 1, src.recommendCalls)
	assert.Zero(t, src.searchCalls, "no fallback on primary success")

	// Provider order is authoritative.
	assert.Equal(t, "track-000", tracks[0].ID)
	assert.Equal(t, "track-019", tracks[19].ID)
}

func TestGetTracks_PrimaryFailureFallsBack(t *testing.T) {
	src := &mockSource{
		recommendErr: errors.New("503 service unavailable"),
		searchTracks: stubTracks(5),
	}
	svc := newTestService()

	tracks, err := svc.GetTracks(context.Background(), src, TrackRequest{
		Mood: mood.Sad, Intensity: mood.IntensityModerate,
	})
	require.NoError(t, err, "primary failure must be absorbed by the fallback")
	assert.Len(t, tracks, 5)
	assert.Equal(t, 1, src.searchCalls, "exactly one fallback call")

	// Fallback is scoped to the mood profile's first genre, no keywords.
	require.Len(t, src.searchQueries, 1)
	assert.Equal(t, `genre:"sad"`, src.searchQueries[0])
}

func TestGetTracks_EmptyPrimaryFallsBack(t *testing.T) {
	src := &mockSource{
		recommendTracks: nil,
		searchTracks:    stubTracks(3),
	}
	svc := newTestService()

	tracks, err := svc.GetTracks(context.Background(), src, TrackRequest{
		Mood: mood.Calm, Intensity: mood.IntensityLow,
	})
	require.NoError(t, err)
	assert.Len(t, tracks, 3)
	assert.Equal(t, 1, src.searchCalls)
}

func TestGetTracks_FallbackUsesUserGenreFirst(t *testing.T) {
	src := &mockSource{
		recommendErr: errors.New("boom"),
		searchTracks: stubTracks(1),
	}
	svc := newTestService()

	_, err := svc.GetTracks(context.Background(), src, TrackRequest{
		Mood: mood.Sad, Intensity: mood.IntensityModerate, UserGenres: []string{"lofi", "jazz"},
	})
	require.NoError(t, err)
	assert.Equal(t, `genre:"lofi"`, src.searchQueries[0])
}

func TestGetTracks_FallbackEmptyIsValid(t *testing.T) {
	src := &mockSource{
		recommendErr: errors.New("boom"),
		searchTracks: []spotify.Track{},
	}
	svc := newTestService()

	tracks, err := svc.GetTracks(context.Background(), src, TrackRequest{
		Mood: mood.Angry, Intensity: mood.IntensityExtreme,
	})
	require.NoError(t, err, "zero fallback tracks is a valid result")
	assert.Empty(t, tracks)
}

func TestGetTracks_FallbackErrorPropagates(t *testing.T) {
	src := &mockSource{
		recommendErr: errors.New("primary down"),
		searchErr:    errors.New("search down"),
	}
	svc := newTestService()

	_, err := svc.GetTracks(context.Background(), src, TrackRequest{
		Mood: mood.Happy, Intensity: mood.IntensityHigh,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fallback genre search")
}

func TestGetTracks_AppliesLimitAndSeedFilter(t *testing.T) {
	src := &mockSource{
		recommendTracks: stubTracks(10),
		hasFilteredSeed: true,
		filteredSeeds:   []string{"pop"},
	}
	svc := newTestService()

	_, err := svc.GetTracks(context.Background(), src, TrackRequest{
		Mood: mood.Happy, Intensity: mood.IntensityHigh, Limit: 10, Market: "BR",
	})
	require.NoError(t, err)
	require.Len(t, src.recommendParams, 1)
	p := src.recommendParams[0]
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "BR", p.Market)
	assert.Equal(t, []string{"pop"}, p.SeedGenres)
}

func TestSearchByMoodText(t *testing.T) {
	src := &mockSource{searchTracks: stubTracks(4), recommendErr: errors.New("must not be called")}
	svc := newTestService()

	tracks, err := svc.SearchByMoodText(context.Background(), src, TrackRequest{
		Mood: mood.Sad, Intensity: mood.IntensityModerate,
	})
	require.NoError(t, err)
	assert.Len(t, tracks, 4)
	assert.Zero(t, src.recommendCalls, "text search is single tier")

	// Query combines first genre and first keyword.
	require.Len(t, src.searchQueries, 1)
	assert.Equal(t, "sad heartbreak", src.searchQueries[0])
}

func TestSearchByMoodText_ErrorPropagates(t *testing.T) {
	src := &mockSource{searchErr: errors.New("down")}
	svc := newTestService()

	_, err := svc.SearchByMoodText(context.Background(), src, TrackRequest{
		Mood: mood.Happy, Intensity: mood.IntensityLow,
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "mood text search"))
}
