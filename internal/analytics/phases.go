package analytics

import (
	"time"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/justestif/moodtunes/internal/mood"
)

// DefaultPhaseCount is the number of phases detected when the caller has no
// preference.
const DefaultPhaseCount = 3

// Phase is a cluster of mood entries with similar musical character,
// detected over the scaled feature vectors of a user's history.
type Phase struct {
	Name     string             `json:"name"`
	Entries  int                `json:"entries"`
	Centroid map[string]float64 `json:"centroid"`
	Start    time.Time          `json:"start"`
	End      time.Time          `json:"end"`
}

// featureNames defines the feature-vector dimensions used for clustering,
// in coordinate order.
var featureNames = []string{"energy", "valence", "danceability", "acousticness"}

// entryObservation wraps an Entry to implement clusters.Observation.
type entryObservation struct {
	entry  Entry
	coords clusters.Coordinates
}

func (o entryObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o entryObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// DetectPhases groups a mood history into numClusters phases by k-means over
// the scaled feature vectors. Returns nil when the history is too small to
// cluster or when partitioning fails; phases are a best-effort enrichment of
// the summary, never an error path.
func DetectPhases(entries []Entry, numClusters int) []Phase {
	if numClusters <= 0 {
		numClusters = DefaultPhaseCount
	}
	if len(entries) < numClusters {
		return nil
	}

	var obs clusters.Observations
	for _, e := range entries {
		scaled := mood.ScaleFor(e.Mood, e.Intensity)
		obs = append(obs, entryObservation{
			entry: e,
			coords: clusters.Coordinates{
				scaled.Energy,
				scaled.Valence,
				scaled.Danceability,
				scaled.Acousticness,
			},
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, numClusters)
	if err != nil {
		return nil
	}

	phases := make([]Phase, 0, len(result))
	for _, cluster := range result {
		if len(cluster.Observations) == 0 {
			continue
		}

		centroid := make(map[string]float64, len(featureNames))
		for i, name := range featureNames {
			centroid[name] = cluster.Center[i]
		}

		phase := Phase{
			Name:     phaseName(centroid),
			Entries:  len(cluster.Observations),
			Centroid: centroid,
		}
		for _, o := range cluster.Observations {
			created := o.(entryObservation).entry.CreatedAt
			if phase.Start.IsZero() || created.Before(phase.Start) {
				phase.Start = created
			}
			if created.After(phase.End) {
				phase.End = created
			}
		}
		phases = append(phases, phase)
	}
	return phases
}

// phaseName labels a centroid by its energy/valence quadrant, with an
// acoustic modifier when acousticness dominates.
func phaseName(centroid map[string]float64) string {
	highEnergy := centroid["energy"] > 0.6
	highValence := centroid["valence"] > 0.5

	var name string
	switch {
	case highEnergy && highValence:
		name = "High-Spirited"
	case highEnergy && !highValence:
		name = "Turbulent"
	case !highEnergy && highValence:
		name = "Easygoing"
	default:
		name = "Subdued"
	}

	if centroid["acousticness"] > 0.6 {
		return name + " (Acoustic)"
	}
	return name
}
