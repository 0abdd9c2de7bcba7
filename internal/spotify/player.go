package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

// Play starts or resumes playback on the user's active device. When track
// URIs are given, playback switches to them.
func (c *Client) Play(ctx context.Context, trackURIs []string) error {
	if len(trackURIs) == 0 {
		if err := c.api.Play(ctx); err != nil {
			return fmt.Errorf("resuming playback: %w", err)
		}
		return nil
	}

	uris := make([]spotify.URI, len(trackURIs))
	for i, u := range trackURIs {
		uris[i] = spotify.URI(u)
	}

	if err := c.api.PlayOpt(ctx, &spotify.PlayOptions{URIs: uris}); err != nil {
		return fmt.Errorf("starting playback: %w", err)
	}
	return nil
}

// Pause pauses playback on the user's active device.
func (c *Client) Pause(ctx context.Context) error {
	if err := c.api.Pause(ctx); err != nil {
		return fmt.Errorf("pausing playback: %w", err)
	}
	return nil
}
