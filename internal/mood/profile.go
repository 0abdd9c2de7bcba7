package mood

// TempoRange is a BPM band.
type TempoRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// MusicProfile describes the musical character matched to a mood category.
// All float fields are in [0,1] and Tempo.Min < Tempo.Max; the table test
// enforces this for every category.
type MusicProfile struct {
	// Genres are Spotify seed genres in preference order.
	Genres       []string   `json:"genres"`
	Energy       float64    `json:"energy"`
	Valence      float64    `json:"valence"`
	Danceability float64    `json:"danceability"`
	Acousticness float64    `json:"acousticness"`
	Tempo        TempoRange `json:"tempo"`
	// Keywords feed the text-search path.
	Keywords []string `json:"keywords"`
}

// profiles is the static mood-to-music table. One entry per category, never
// mutated after init.
var profiles = map[Category]MusicProfile{
	VeryHappy: {
		Genres: []string{"happy", "dance", "pop", "disco"},
		Energy: 0.9, Valence: 0.95, Danceability: 0.9, Acousticness: 0.1,
		Tempo: TempoRange{Min: 115, Max: 135},
		Keywords: []string{"euphoric", "celebration"},
	},
	Happy: {
		Genres: []string{"pop", "happy", "funk", "indie-pop"},
		Energy: 0.75, Valence: 0.85, Danceability: 0.8, Acousticness: 0.2,
		Tempo: TempoRange{Min: 110, Max: 130},
		Keywords: []string{"feel good", "upbeat"},
	},
	Excited: {
		Genres: []string{"edm", "party", "dance", "electro"},
		Energy: 0.95, Valence: 0.8, Danceability: 0.9, Acousticness: 0.05,
		Tempo: TempoRange{Min: 118, Max: 140},
		Keywords: []string{"hype", "festival"},
	},
	Energetic: {
		Genres: []string{"work-out", "edm", "hip-hop", "power-pop"},
		Energy: 0.95, Valence: 0.7, Danceability: 0.85, Acousticness: 0.05,
		Tempo: TempoRange{Min: 120, Max: 150},
		Keywords: []string{"pump up", "adrenaline"},
	},
	Content: {
		Genres: []string{"indie", "folk", "acoustic", "soul"},
		Energy: 0.55, Valence: 0.7, Danceability: 0.55, Acousticness: 0.45,
		Tempo: TempoRange{Min: 95, Max: 115},
		Keywords: []string{"warm", "mellow"},
	},
	Calm: {
		Genres: []string{"chill", "ambient", "acoustic"},
		Energy: 0.3, Valence: 0.6, Danceability: 0.35, Acousticness: 0.7,
		Tempo: TempoRange{Min: 70, Max: 95},
		Keywords: []string{"peaceful", "serene"},
	},
	Relaxed: {
		Genres: []string{"chill", "jazz", "bossanova"},
		Energy: 0.35, Valence: 0.65, Danceability: 0.45, Acousticness: 0.6,
		Tempo: TempoRange{Min: 75, Max: 100},
		Keywords: []string{"laid back", "easygoing"},
	},
	Romantic: {
		Genres: []string{"romance", "r-n-b", "soul", "jazz"},
		Energy: 0.45, Valence: 0.7, Danceability: 0.5, Acousticness: 0.5,
		Tempo: TempoRange{Min: 80, Max: 110},
		Keywords: []string{"love", "slow dance"},
	},
	Neutral: {
		Genres: []string{"pop", "indie", "alternative"},
		Energy: 0.5, Valence: 0.5, Danceability: 0.5, Acousticness: 0.4,
		Tempo: TempoRange{Min: 90, Max: 120},
		Keywords: []string{"everyday", "background"},
	},
	Tired: {
		Genres: []string{"sleep", "ambient", "piano"},
		Energy: 0.2, Valence: 0.4, Danceability: 0.25, Acousticness: 0.85,
		Tempo: TempoRange{Min: 60, Max: 80},
		Keywords: []string{"drowsy", "winding down"},
	},
	Bored: {
		Genres: []string{"alternative", "indie", "garage"},
		Energy: 0.5, Valence: 0.45, Danceability: 0.55, Acousticness: 0.35,
		Tempo: TempoRange{Min: 95, Max: 120},
		Keywords: []string{"something different", "discover"},
	},
	Sad: {
		Genres: []string{"sad", "acoustic", "piano", "singer-songwriter"},
		Energy: 0.3, Valence: 0.2, Danceability: 0.3, Acousticness: 0.7,
		Tempo: TempoRange{Min: 65, Max: 90},
		Keywords: []string{"heartbreak", "melancholy"},
	},
	VerySad: {
		Genres: []string{"sad", "piano", "ambient"},
		Energy: 0.2, Valence: 0.1, Danceability: 0.2, Acousticness: 0.8,
		Tempo: TempoRange{Min: 60, Max: 80},
		Keywords: []string{"grief", "tears"},
	},
	Anxious: {
		Genres: []string{"ambient", "classical", "chill"},
		Energy: 0.35, Valence: 0.4, Danceability: 0.3, Acousticness: 0.75,
		Tempo: TempoRange{Min: 70, Max: 90},
		Keywords: []string{"soothing", "breathe"},
	},
	Stressed: {
		Genres: []string{"chill", "ambient", "classical", "acoustic"},
		Energy: 0.3, Valence: 0.45, Danceability: 0.3, Acousticness: 0.7,
		Tempo: TempoRange{Min: 65, Max: 90},
		Keywords: []string{"unwind", "decompress"},
	},
	Angry: {
		Genres: []string{"metal", "punk", "hard-rock", "rock"},
		Energy: 0.95, Valence: 0.3, Danceability: 0.55, Acousticness: 0.05,
		Tempo: TempoRange{Min: 120, Max: 160},
		Keywords: []string{"rage", "catharsis"},
	},
}

// ProfileFor returns the music profile for a category. Every valid category
// has an entry; the lookup is total by construction.
func ProfileFor(c Category) MusicProfile {
	return profiles[c]
}
