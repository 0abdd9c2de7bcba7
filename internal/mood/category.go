// Package mood defines the mood domain: the fixed mood categories, the
// musical profile authored for each one, and the intensity scaling that turns
// a logged mood into concrete recommendation parameters.
package mood

import (
	"fmt"
	"strings"
)

// Category is one of the 16 fixed mood labels a user can log.
type Category string

const (
	VeryHappy Category = "VERY_HAPPY"
	Happy     Category = "HAPPY"
	Excited   Category = "EXCITED"
	Energetic Category = "ENERGETIC"
	Content   Category = "CONTENT"
	Calm      Category = "CALM"
	Relaxed   Category = "RELAXED"
	Romantic  Category = "ROMANTIC"
	Neutral   Category = "NEUTRAL"
	Tired     Category = "TIRED"
	Bored     Category = "BORED"
	Sad       Category = "SAD"
	VerySad   Category = "VERY_SAD"
	Anxious   Category = "ANXIOUS"
	Stressed  Category = "STRESSED"
	Angry     Category = "ANGRY"
)

// Categories lists every category in display order.
var Categories = []Category{
	VeryHappy, Happy, Excited, Energetic,
	Content, Calm, Relaxed, Romantic,
	Neutral, Tired, Bored,
	Sad, VerySad, Anxious, Stressed, Angry,
}

// labels maps each category to its display label.
var labels = map[Category]string{
	VeryHappy: "Very Happy",
	Happy:     "Happy",
	Excited:   "Excited",
	Energetic: "Energetic",
	Content:   "Content",
	Calm:      "Calm",
	Relaxed:   "Relaxed",
	Romantic:  "Romantic",
	Neutral:   "Neutral",
	Tired:     "Tired",
	Bored:     "Bored",
	Sad:       "Sad",
	VerySad:   "Very Sad",
	Anxious:   "Anxious",
	Stressed:  "Stressed",
	Angry:     "Angry",
}

// ParseCategory validates a raw string as a Category. Matching is
// case-insensitive.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown mood category %q", s)
	}
	return c, nil
}

// Valid reports whether the category is one of the 16 known values.
func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Label returns the display label for the category.
func (c Category) Label() string {
	return labels[c]
}

// Intensity is how strongly the mood is felt, on a 1-4 scale.
type Intensity int

const (
	IntensityLow      Intensity = 1
	IntensityModerate Intensity = 2
	IntensityHigh     Intensity = 3
	IntensityExtreme  Intensity = 4
)

// intensityAdjectives are used when generating playlist names, indexed by
// level minus one.
var intensityAdjectives = [4]string{"Suave", "Moderado", "Intenso", "Extremo"}

// Valid reports whether the intensity is in the 1-4 range.
func (i Intensity) Valid() bool {
	return i >= IntensityLow && i <= IntensityExtreme
}

// Adjective returns the playlist-naming adjective for the intensity.
// Out-of-range values are clamped.
func (i Intensity) Adjective() string {
	return intensityAdjectives[i.clamp()-1]
}

// clamp forces the intensity into the 1-4 range.
func (i Intensity) clamp() Intensity {
	if i < IntensityLow {
		return IntensityLow
	}
	if i > IntensityExtreme {
		return IntensityExtreme
	}
	return i
}
