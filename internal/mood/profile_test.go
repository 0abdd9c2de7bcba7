package mood

import "testing"

func TestProfileTableComplete(t *testing.T) {
	if len(Categories) != 16 {
		t.Fatalf("expected 16 categories, got %d", len(Categories))
	}

	for _, c := range Categories {
		p := ProfileFor(c)

		if len(p.Genres) == 0 {
			t.Errorf("%s: no genres", c)
		}
		if len(p.Keywords) == 0 {
			t.Errorf("%s: no keywords", c)
		}

		for name, v := range map[string]float64{
			"energy":       p.Energy,
			"valence":      p.Valence,
			"danceability": p.Danceability,
			"acousticness": p.Acousticness,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s: %s = %v out of [0,1]", c, name, v)
			}
		}

		if p.Tempo.Min >= p.Tempo.Max {
			t.Errorf("%s: tempo min %d >= max %d", c, p.Tempo.Min, p.Tempo.Max)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("VERY_HAPPY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != VeryHappy {
		t.Errorf("expected VeryHappy, got %s", c)
	}
	if c.Label() != "Very Happy" {
		t.Errorf("unexpected label %q", c.Label())
	}

	if c, err := ParseCategory("very_happy"); err != nil || c != VeryHappy {
		t.Errorf("lowercase input: got %s, %v", c, err)
	}

	if _, err := ParseCategory("ECSTATIC"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestIntensityAdjective(t *testing.T) {
	adjectives := map[Intensity]string{
		IntensityLow:      "Suave",
		IntensityModerate: "Moderado",
		IntensityHigh:     "Intenso",
		IntensityExtreme:  "Extremo",
	}
	for level, want := range adjectives {
		if got := level.Adjective(); got != want {
			t.Errorf("intensity %d: expected %q, got %q", level, want, got)
		}
	}

	// Out-of-range intensities clamp rather than panic.
	if got := Intensity(0).Adjective(); got != "Suave" {
		t.Errorf("intensity 0: expected clamp to Suave, got %q", got)
	}
	if got := Intensity(9).Adjective(); got != "Extremo" {
		t.Errorf("intensity 9: expected clamp to Extremo, got %q", got)
	}
}
