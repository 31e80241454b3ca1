package moodring

// FeatureNames is the order in which audio features are fed to the classifier.
var FeatureNames = []string{
	"valence",
	"danceability",
	"energy",
	"tempo",
	"acousticness",
	"liveness",
}

// Song is a single row of the recommendation dataset.
type Song struct {
	Name string `json:"song_name"`
	// Mood is the canonical mood label, e.g. "Happy".
	Mood     string   `json:"mood"`
	Features Features `json:"features"`
}

type Features struct {
	// Valence describes the musical positiveness conveyed by a track.
	// Range: 0 - 1
	Valence float64 `json:"valence"`
	// Danceability describes how suitable a track is for dancing.
	// Range: 0 - 1
	Danceability float64 `json:"danceability"`
	// Energy is a perceptual measure of intensity and activity.
	// Range: 0 - 1
	Energy float64 `json:"energy"`
	// Tempo is the overall estimated tempo in beats per minute.
	// Example: 118.211
	Tempo float64 `json:"tempo"`
	// Acousticness is a confidence measure of whether the track is acoustic.
	// Range: 0 - 1
	Acousticness float64 `json:"acousticness"`
	// Liveness detects the presence of an audience in the recording.
	// Range: 0 - 1
	Liveness float64 `json:"liveness"`
}

// Vector returns the features in FeatureNames order.
func (f Features) Vector() []float64 {
	return []float64{
		f.Valence,
		f.Danceability,
		f.Energy,
		f.Tempo,
		f.Acousticness,
		f.Liveness,
	}
}

// MissingMood is stored for rows without a usable mood label. Normalization
// turns it into "Nan", which is then served like any other mood.
const MissingMood = "nan"

// FeaturesFromVector is the inverse of Features.Vector. v must hold one
// value per entry in FeatureNames.
func FeaturesFromVector(v []float64) Features {
	return Features{
		Valence:      v[0],
		Danceability: v[1],
		Energy:       v[2],
		Tempo:        v[3],
		Acousticness: v[4],
		Liveness:     v[5],
	}
}
