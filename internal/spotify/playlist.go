package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

// MaxTracksPerAdd is Spotify's hard limit on tracks per add-tracks request.
// Callers chunk their additions; AddTracks issues a single request.
const MaxTracksPerAdd = 100

// CreatePlaylist creates a private playlist under the given account.
func (c *Client) CreatePlaylist(ctx context.Context, accountID, name, description string, public bool) (Playlist, error) {
	playlist, err := c.api.CreatePlaylistForUser(ctx, accountID, name, description, public, false)
	if err != nil {
		return Playlist{}, fmt.Errorf("creating playlist: %w", err)
	}

	return Playlist{
		ID:          playlist.ID.String(),
		Name:        playlist.Name,
		ExternalURL: playlist.ExternalURLs["spotify"],
	}, nil
}

// AddTracks appends up to MaxTracksPerAdd tracks to a playlist in one
// request, preserving order.
func (c *Client) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return nil
	}
	if len(trackIDs) > MaxTracksPerAdd {
		return fmt.Errorf("adding tracks: %d exceeds the %d per-request limit", len(trackIDs), MaxTracksPerAdd)
	}

	ids := make([]spotify.ID, len(trackIDs))
	for i, id := range trackIDs {
		ids[i] = spotify.ID(id)
	}

	if _, err := c.api.AddTracksToPlaylist(ctx, spotify.ID(playlistID), ids...); err != nil {
		return fmt.Errorf("adding %d tracks: %w", len(ids), err)
	}
	return nil
}
