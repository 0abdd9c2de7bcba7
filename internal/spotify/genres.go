package spotify

import "context"

// FilterSeedGenres drops seed genres the provider does not recognize. The
// available-genre-seeds list is fetched once and cached on the client. If
// the seeds call fails, or filtering would leave nothing to seed with, the
// input is returned unchanged so the recommendation call can still be made.
func (c *Client) FilterSeedGenres(ctx context.Context, genres []string) []string {
	seeds, err := c.availableSeeds(ctx)
	if err != nil {
		return genres
	}

	filtered := filterAgainst(seeds, genres)
	if len(filtered) == 0 {
		return genres
	}
	return filtered
}

// availableSeeds returns the cached genre-seed set, fetching it on first use.
func (c *Client) availableSeeds(ctx context.Context) (map[string]bool, error) {
	c.seedsMu.RLock()
	seeds := c.seeds
	c.seedsMu.RUnlock()
	if seeds != nil {
		return seeds, nil
	}

	list, err := c.api.GetAvailableGenreSeeds(ctx)
	if err != nil {
		return nil, err
	}

	seeds = make(map[string]bool, len(list))
	for _, g := range list {
		seeds[g] = true
	}

	c.seedsMu.Lock()
	c.seeds = seeds
	c.seedsMu.Unlock()

	return seeds, nil
}

func filterAgainst(valid map[string]bool, genres []string) []string {
	filtered := make([]string, 0, len(genres))
	for _, g := range genres {
		if valid[g] {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
