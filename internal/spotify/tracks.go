package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/justestif/moodtunes/internal/mood"
)

// Recommend queries the recommendation endpoint with seed genres and target
// audio features. The provider's ranking is authoritative; results are
// returned in provider order.
func (c *Client) Recommend(ctx context.Context, p mood.RecommendationParams) ([]Track, error) {
	seeds := spotify.Seeds{Genres: p.SeedGenres}
	attrs := spotify.NewTrackAttributes().
		TargetEnergy(p.TargetEnergy).
		TargetValence(p.TargetValence).
		TargetDanceability(p.TargetDanceability).
		TargetAcousticness(p.TargetAcousticness).
		MinTempo(float64(p.MinTempo)).
		MaxTempo(float64(p.MaxTempo))

	recs, err := c.api.GetRecommendations(ctx, seeds, attrs,
		spotify.Limit(p.Limit), spotify.Market(p.Market))
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}

	tracks := make([]Track, len(recs.Tracks))
	for i, t := range recs.Tracks {
		tracks[i] = fromSimpleTrack(t)
	}
	return tracks, nil
}

// SearchTracks runs a catalog track search with the given query string.
// Zero results is a valid outcome and returns an empty slice.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int, market string) ([]Track, error) {
	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack,
		spotify.Limit(limit), spotify.Market(market))
	if err != nil {
		return nil, fmt.Errorf("searching tracks: %w", err)
	}

	if result.Tracks == nil {
		return []Track{}, nil
	}

	tracks := make([]Track, len(result.Tracks.Tracks))
	for i, t := range result.Tracks.Tracks {
		tracks[i] = fromFullTrack(t)
	}
	return tracks, nil
}
