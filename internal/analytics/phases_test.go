package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/justestif/moodtunes/internal/mood"
)

func TestDetectPhasesTooFewEntries(t *testing.T) {
	entries := []Entry{
		entryAt(mood.Happy, 2, time.Now()),
		entryAt(mood.Sad, 2, time.Now()),
	}
	assert.Nil(t, DetectPhases(entries, 3))
}

func TestDetectPhases(t *testing.T) {
	now := time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC)

	// Two well-separated groups: a high-energy happy stretch and a low,
	// acoustic sad stretch.
	var entries []Entry
	for i := 0; i < 6; i++ {
		entries = append(entries, entryAt(mood.VeryHappy, mood.IntensityHigh, now.AddDate(0, 0, -i)))
	}
	for i := 10; i < 16; i++ {
		entries = append(entries, entryAt(mood.VerySad, mood.IntensityLow, now.AddDate(0, 0, -i)))
	}

	phases := DetectPhases(entries, 2)
	assert.NotEmpty(t, phases)

	total := 0
	for _, p := range phases {
		assert.NotEmpty(t, p.Name)
		assert.NotZero(t, p.Entries)
		assert.False(t, p.Start.After(p.End))
		for _, dim := range featureNames {
			assert.Contains(t, p.Centroid, dim)
		}
		total += p.Entries
	}
	assert.Equal(t, len(entries), total, "every entry belongs to a phase")
}

func TestPhaseName(t *testing.T) {
	tests := []struct {
		name     string
		centroid map[string]float64
		want     string
	}{
		{"high energy high valence", map[string]float64{"energy": 0.9, "valence": 0.8}, "High-Spirited"},
		{"high energy low valence", map[string]float64{"energy": 0.9, "valence": 0.2}, "Turbulent"},
		{"low energy high valence", map[string]float64{"energy": 0.3, "valence": 0.7}, "Easygoing"},
		{"low energy low valence", map[string]float64{"energy": 0.2, "valence": 0.2}, "Subdued"},
		{
			"acoustic modifier",
			map[string]float64{"energy": 0.2, "valence": 0.2, "acousticness": 0.8},
			"Subdued (Acoustic)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phaseName(tt.centroid))
		})
	}
}
