package mood

import "testing"

func TestScaleMultipliers(t *testing.T) {
	p := MusicProfile{
		Genres:       []string{"pop"},
		Energy:       0.5,
		Valence:      0.5,
		Danceability: 0.5,
		Acousticness: 0.5,
		Tempo:        TempoRange{Min: 100, Max: 125},
		Keywords:     []string{"test"},
	}

	tests := []struct {
		level      Intensity
		wantEnergy float64
		wantMin    int
		wantMax    int
	}{
		{IntensityLow, 0.2, 50, 50},        // 0.4x, tempo floor clamps to 50
		{IntensityModerate, 0.4, 80, 100},  // 0.8x
		{IntensityHigh, 0.6, 120, 150},     // 1.2x
		{IntensityExtreme, 0.8, 160, 200},  // 1.6x, max clamps to 200
	}

	for _, tt := range tests {
		got := Scale(p, tt.level)
		if got.Energy != tt.wantEnergy {
			t.Errorf("level %d: energy = %v, want %v", tt.level, got.Energy, tt.wantEnergy)
		}
		if got.Danceability != tt.wantEnergy {
			t.Errorf("level %d: danceability = %v, want %v", tt.level, got.Danceability, tt.wantEnergy)
		}
		if got.Tempo.Min != tt.wantMin || got.Tempo.Max != tt.wantMax {
			t.Errorf("level %d: tempo = %d-%d, want %d-%d",
				tt.level, got.Tempo.Min, got.Tempo.Max, tt.wantMin, tt.wantMax)
		}
	}
}

func TestScaleClampsToOne(t *testing.T) {
	p := MusicProfile{Energy: 0.9, Danceability: 0.95, Tempo: TempoRange{Min: 60, Max: 90}}

	got := Scale(p, IntensityExtreme)
	// 0.9 * 1.6 = 1.44 raw; must clamp.
	if got.Energy != 1.0 {
		t.Errorf("energy = %v, want 1.0", got.Energy)
	}
	if got.Danceability != 1.0 {
		t.Errorf("danceability = %v, want 1.0", got.Danceability)
	}
}

func TestScalePreservesValenceAndAcousticness(t *testing.T) {
	for _, c := range Categories {
		p := ProfileFor(c)
		for level := IntensityLow; level <= IntensityExtreme; level++ {
			got := Scale(p, level)
			if got.Valence != p.Valence {
				t.Errorf("%s level %d: valence changed %v -> %v", c, level, p.Valence, got.Valence)
			}
			if got.Acousticness != p.Acousticness {
				t.Errorf("%s level %d: acousticness changed %v -> %v", c, level, p.Acousticness, got.Acousticness)
			}
		}
	}
}

func TestScaleClampsIntensity(t *testing.T) {
	p := ProfileFor(Happy)

	if got, want := Scale(p, Intensity(0)), Scale(p, IntensityLow); got.Energy != want.Energy {
		t.Errorf("intensity 0: energy = %v, want %v", got.Energy, want.Energy)
	}
	if got, want := Scale(p, Intensity(7)), Scale(p, IntensityExtreme); got.Energy != want.Energy {
		t.Errorf("intensity 7: energy = %v, want %v", got.Energy, want.Energy)
	}
}
