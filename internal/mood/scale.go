package mood

import "math"

// Tempo clamping bounds for scaled profiles. Spotify rejects tempo targets
// outside a sane BPM window.
const (
	minScaledTempo = 50
	maxScaledTempo = 200
)

// ScaledProfile is a MusicProfile adjusted for intensity. Energy,
// danceability and tempo are scaled; valence and acousticness are carried
// through unchanged. Computed per request, never persisted.
type ScaledProfile struct {
	Genres       []string   `json:"genres"`
	Energy       float64    `json:"energy"`
	Valence      float64    `json:"valence"`
	Danceability float64    `json:"danceability"`
	Acousticness float64    `json:"acousticness"`
	Tempo        TempoRange `json:"tempo"`
	Keywords     []string   `json:"keywords"`
}

// Scale adjusts a profile by intensity. The multiplier is level/2.5, so
// levels 1-4 map to 0.4, 0.8, 1.2 and 1.6. Out-of-range intensities are
// clamped into 1-4.
func Scale(p MusicProfile, level Intensity) ScaledProfile {
	m := float64(level.clamp()) / 2.5

	return ScaledProfile{
		Genres:       p.Genres,
		Energy:       clamp01(p.Energy * m),
		Valence:      p.Valence,
		Danceability: clamp01(p.Danceability * m),
		Acousticness: p.Acousticness,
		Tempo: TempoRange{
			Min: max(minScaledTempo, int(math.Floor(float64(p.Tempo.Min)*m))),
			Max: min(maxScaledTempo, int(math.Floor(float64(p.Tempo.Max)*m))),
		},
		Keywords: p.Keywords,
	}
}

// ScaleFor is Scale applied to a category's table profile.
func ScaleFor(c Category, level Intensity) ScaledProfile {
	return Scale(ProfileFor(c), level)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
