package mood

import (
	"reflect"
	"testing"
)

func TestMergeGenres(t *testing.T) {
	tests := []struct {
		name    string
		user    []string
		profile []string
		want    []string
	}{
		{
			name:    "user genres first, deduplicated",
			user:    []string{"lofi", "lofi", "jazz"},
			profile: []string{"ambient", "chillout"},
			want:    []string{"lofi", "jazz", "ambient", "chillout"},
		},
		{
			name:    "truncated to five",
			user:    []string{"a", "b", "c"},
			profile: []string{"d", "e", "f", "g"},
			want:    []string{"a", "b", "c", "d", "e"},
		},
		{
			name:    "no user genres",
			user:    nil,
			profile: []string{"pop", "dance"},
			want:    []string{"pop", "dance"},
		},
		{
			name:    "empty strings skipped",
			user:    []string{"", "rock"},
			profile: []string{"metal"},
			want:    []string{"rock", "metal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeGenres(tt.user, tt.profile)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeGenres() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildParams(t *testing.T) {
	p := BuildParams(Happy, IntensityModerate, []string{"funk"})

	scaled := ScaleFor(Happy, IntensityModerate)
	if p.TargetEnergy != scaled.Energy {
		t.Errorf("target energy = %v, want %v", p.TargetEnergy, scaled.Energy)
	}
	if p.TargetValence != scaled.Valence {
		t.Errorf("target valence = %v, want %v", p.TargetValence, scaled.Valence)
	}
	if p.MinTempo != scaled.Tempo.Min || p.MaxTempo != scaled.Tempo.Max {
		t.Errorf("tempo band = %d-%d, want %d-%d", p.MinTempo, p.MaxTempo, scaled.Tempo.Min, scaled.Tempo.Max)
	}

	if p.Limit != DefaultLimit {
		t.Errorf("limit = %d, want %d", p.Limit, DefaultLimit)
	}
	if p.Market != DefaultMarket {
		t.Errorf("market = %q, want %q", p.Market, DefaultMarket)
	}

	// "funk" is already in Happy's profile genres; it must not repeat.
	if p.SeedGenres[0] != "funk" {
		t.Errorf("seed genres = %v, want user genre first", p.SeedGenres)
	}
	seen := make(map[string]int)
	for _, g := range p.SeedGenres {
		seen[g]++
	}
	if seen["funk"] != 1 {
		t.Errorf("seed genres contain funk %d times: %v", seen["funk"], p.SeedGenres)
	}
	if len(p.SeedGenres) > MaxSeedGenres {
		t.Errorf("seed genres over cap: %v", p.SeedGenres)
	}
}

func TestSeedGenreString(t *testing.T) {
	p := RecommendationParams{SeedGenres: []string{"pop", "dance", "disco"}}
	if got := p.SeedGenreString(); got != "pop,dance,disco" {
		t.Errorf("SeedGenreString() = %q", got)
	}
}

func TestBuildSearchQuery(t *testing.T) {
	got := BuildSearchQuery(Sad, IntensityModerate)
	want := "heartbreak OR melancholy OR sad OR acoustic"
	if got != want {
		t.Errorf("BuildSearchQuery() = %q, want %q", got, want)
	}
}
