package mood

import "strings"

const (
	// DefaultLimit is the default track count requested from the provider.
	DefaultLimit = 20

	// DefaultMarket is the default market for provider queries.
	DefaultMarket = "US"

	// MaxSeedGenres is Spotify's cap on recommendation seed genres.
	MaxSeedGenres = 5
)

// RecommendationParams is the provider query derived from a logged mood.
type RecommendationParams struct {
	SeedGenres         []string
	TargetEnergy       float64
	TargetValence      float64
	TargetDanceability float64
	TargetAcousticness float64
	MinTempo           int
	MaxTempo           int
	Limit              int
	Market             string
}

// BuildParams derives recommendation parameters from a mood, its intensity
// and the user's preferred genres. User genres take precedence over the
// profile's genres in the merged seed list. Limit and Market are set to
// their defaults; callers may override them on the returned value.
func BuildParams(c Category, level Intensity, userGenres []string) RecommendationParams {
	scaled := ScaleFor(c, level)

	return RecommendationParams{
		SeedGenres:         MergeGenres(userGenres, scaled.Genres),
		TargetEnergy:       scaled.Energy,
		TargetValence:      scaled.Valence,
		TargetDanceability: scaled.Danceability,
		TargetAcousticness: scaled.Acousticness,
		MinTempo:           scaled.Tempo.Min,
		MaxTempo:           scaled.Tempo.Max,
		Limit:              DefaultLimit,
		Market:             DefaultMarket,
	}
}

// SeedGenreString returns the seed genres comma-joined, the format the
// provider's recommendation endpoint expects.
func (p RecommendationParams) SeedGenreString() string {
	return strings.Join(p.SeedGenres, ",")
}

// MergeGenres deduplicates the union of user genres followed by profile
// genres, preserving first-seen order, truncated to MaxSeedGenres.
func MergeGenres(userGenres, profileGenres []string) []string {
	merged := make([]string, 0, MaxSeedGenres)
	seen := make(map[string]bool)

	for _, g := range append(append([]string{}, userGenres...), profileGenres...) {
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		merged = append(merged, g)
		if len(merged) == MaxSeedGenres {
			break
		}
	}

	return merged
}

// BuildSearchQuery builds the text-search fallback query for a mood: the
// first two keywords and first two genres joined with the OR operator.
func BuildSearchQuery(c Category, level Intensity) string {
	scaled := ScaleFor(c, level)

	terms := make([]string, 0, 4)
	terms = append(terms, firstN(scaled.Keywords, 2)...)
	terms = append(terms, firstN(scaled.Genres, 2)...)

	return strings.Join(terms, " OR ")
}

func firstN(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	return s[:n]
}
