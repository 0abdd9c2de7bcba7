package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justestif/moodtunes/internal/mood"
	"github.com/justestif/moodtunes/internal/spotify"
)

func TestCreateMoodPlaylist_SingleBatch(t *testing.T) {
	src := &mockSource{
		recommendTracks: stubTracks(20),
		playlist:        spotify.Playlist{ID: "pl1", Name: "x", ExternalURL: "https://open.spotify.com/playlist/pl1"},
	}
	svc := newTestService()

	result, err := svc.CreateMoodPlaylist(context.Background(), src, "acct", PlaylistRequest{
		Mood: mood.Happy, Intensity: mood.IntensityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, "pl1", result.Playlist.ID)
	assert.Len(t, result.Tracks, 20)
	assert.Equal(t, 1, src.createCalls)
	assert.Equal(t, 1, src.addCalls, "20 tracks fit one batch")
	assert.Len(t, src.addBatches[0], 20)
}

func TestCreateMoodPlaylist_ChunksAtHundred(t *testing.T) {
	src := &mockSource{
		recommendTracks: stubTracks(150),
		playlist:        spotify.Playlist{ID: "pl1"},
	}
	svc := newTestService()

	_, err := svc.CreateMoodPlaylist(context.Background(), src, "acct", PlaylistRequest{
		Mood: mood.Happy, Intensity: mood.IntensityHigh, Limit: 150,
	})
	require.NoError(t, err)
	require.Equal(t, 2, src.addCalls, "150 tracks need two batches")
	assert.Len(t, src.addBatches[0], 100)
	assert.Len(t, src.addBatches[1], 50)

	// Batches preserve retrieval order end to end.
	assert.Equal(t, "track-000", src.addBatches[0][0])
	assert.Equal(t, "track-099", src.addBatches[0][99])
	assert.Equal(t, "track-100", src.addBatches[1][0])
	assert.Equal(t, "track-149", src.addBatches[1][49])
}

func TestCreateMoodPlaylist_NoTracks(t *testing.T) {
	src := &mockSource{
		recommendTracks: nil,
		searchTracks:    []spotify.Track{},
	}
	svc := newTestService()

	_, err := svc.CreateMoodPlaylist(context.Background(), src, "acct", PlaylistRequest{
		Mood: mood.Tired, Intensity: mood.IntensityLow,
	})
	require.ErrorIs(t, err, ErrNoTracks)
	assert.Zero(t, src.createCalls, "no playlist is created for an empty result")
	assert.Zero(t, src.addCalls)
}

func TestCreateMoodPlaylist_CustomName(t *testing.T) {
	src := &mockSource{
		recommendTracks: stubTracks(5),
		playlist:        spotify.Playlist{ID: "pl1"},
	}
	svc := newTestService()

	_, err := svc.CreateMoodPlaylist(context.Background(), src, "acct", PlaylistRequest{
		Mood: mood.Calm, Intensity: mood.IntensityLow, CustomName: "Sunday Reset",
	})
	require.NoError(t, err)
	require.Len(t, src.createdNames, 1)
	assert.Equal(t, "Sunday Reset", src.createdNames[0])
}

func TestCreateMoodPlaylist_CreateFailurePropagates(t *testing.T) {
	src := &mockSource{
		recommendTracks: stubTracks(5),
		createErr:       errors.New("403 forbidden"),
	}
	svc := newTestService()

	_, err := svc.CreateMoodPlaylist(context.Background(), src, "acct", PlaylistRequest{
		Mood: mood.Happy, Intensity: mood.IntensityHigh,
	})
	require.Error(t, err)
	assert.Zero(t, src.addCalls)
}

func TestPlaylistName(t *testing.T) {
	now := time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)

	got := playlistName(mood.VeryHappy, mood.IntensityHigh, now)
	assert.Equal(t, "Very Happy Intenso - Mar 9, 2025", got)
}

func TestPlaylistDescription(t *testing.T) {
	got := playlistDescription(mood.Angry)
	assert.Equal(t, "Songs for a angry mood. Genres: metal, punk, hard-rock.", got)
}
