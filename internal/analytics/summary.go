// Package analytics summarizes a user's mood history into distributions,
// trends and derived statistics.
package analytics

import (
	"time"

	"github.com/justestif/moodtunes/internal/mood"
)

// Entry is the slice of a mood record the analytics pipeline needs.
type Entry struct {
	Mood      mood.Category
	Intensity mood.Intensity
	CreatedAt time.Time
}

// WeekStat aggregates the musical character of one calendar week's entries.
// Energy reflects intensity scaling; valence does not, by construction of
// the scaler.
type WeekStat struct {
	WeekStart  time.Time `json:"week_start"`
	Entries    int       `json:"entries"`
	AvgEnergy  float64   `json:"avg_energy"`
	AvgValence float64   `json:"avg_valence"`
}

// Summary is the derived view of a mood history.
type Summary struct {
	TotalEntries      int                   `json:"total_entries"`
	Distribution      map[mood.Category]int `json:"distribution"`
	DominantMood      mood.Category         `json:"dominant_mood,omitempty"`
	AverageIntensity  float64               `json:"average_intensity"`
	CurrentStreakDays int                   `json:"current_streak_days"`
	WeeklyTrend       []WeekStat            `json:"weekly_trend"`
	Phases            []Phase               `json:"phases,omitempty"`
}

// trendWeeks is how many calendar weeks the weekly trend covers, current
// week included.
const trendWeeks = 4

// Summarize computes the full summary for a history. Entries may be in any
// order; now anchors the streak and trend windows.
func Summarize(entries []Entry, now time.Time) Summary {
	s := Summary{
		TotalEntries: len(entries),
		Distribution: make(map[mood.Category]int),
		WeeklyTrend:  weeklyTrend(entries, now),
	}
	if len(entries) == 0 {
		return s
	}

	intensitySum := 0
	for _, e := range entries {
		s.Distribution[e.Mood]++
		intensitySum += int(e.Intensity)
	}
	s.AverageIntensity = float64(intensitySum) / float64(len(entries))
	s.DominantMood = dominant(s.Distribution)
	s.CurrentStreakDays = streak(entries, now)

	return s
}

// dominant picks the most frequent category, breaking ties by table order
// so the result is deterministic.
func dominant(dist map[mood.Category]int) mood.Category {
	var best mood.Category
	bestCount := 0
	for _, c := range mood.Categories {
		if dist[c] > bestCount {
			best = c
			bestCount = dist[c]
		}
	}
	return best
}

// streak counts consecutive days with at least one entry, ending today or,
// when today has no entry yet, yesterday.
func streak(entries []Entry, now time.Time) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CreatedAt.Format("2006-01-02")] = true
	}

	day := now
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	count := 0
	for days[day.Format("2006-01-02")] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// weeklyTrend averages the scaled energy and the valence of each calendar
// week's entries, oldest week first, covering the last trendWeeks weeks.
func weeklyTrend(entries []Entry, now time.Time) []WeekStat {
	trend := make([]WeekStat, trendWeeks)
	starts := make(map[time.Time]int, trendWeeks)

	current := weekStart(now)
	for i := 0; i < trendWeeks; i++ {
		start := current.AddDate(0, 0, -7*(trendWeeks-1-i))
		trend[i] = WeekStat{WeekStart: start}
		starts[start] = i
	}

	energySums := make([]float64, trendWeeks)
	valenceSums := make([]float64, trendWeeks)
	for _, e := range entries {
		i, ok := starts[weekStart(e.CreatedAt)]
		if !ok {
			continue
		}
		scaled := mood.ScaleFor(e.Mood, e.Intensity)
		trend[i].Entries++
		energySums[i] += scaled.Energy
		valenceSums[i] += scaled.Valence
	}

	for i := range trend {
		if trend[i].Entries == 0 {
			continue
		}
		n := float64(trend[i].Entries)
		trend[i].AvgEnergy = energySums[i] / n
		trend[i].AvgValence = valenceSums[i] / n
	}
	return trend
}

// weekStart truncates a time to the Monday of its week.
func weekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset)
}
