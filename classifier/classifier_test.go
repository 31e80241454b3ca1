package classifier

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mager/moodring/config"
	"github.com/mager/moodring/logger"
	"github.com/mager/moodring/moodring"
)

// valenceTree sends valence <= 0.5 to class 0 and everything else to class 1.
func valenceTree(low, high []float64) Tree {
	return Tree{
		ChildrenLeft:  []int{1, -1, -1},
		ChildrenRight: []int{2, -1, -1},
		Feature:       []int{0, -2, -2},
		Threshold:     []float64{0.5, -2, -2},
		Value:         [][]float64{{5, 5}, low, high},
	}
}

// tempoTree sends tempo <= 100 to class 0 and everything else to class 1.
func tempoTree() Tree {
	return Tree{
		ChildrenLeft:  []int{1, -1, -1},
		ChildrenRight: []int{2, -1, -1},
		Feature:       []int{3, -2, -2},
		Threshold:     []float64{100, -2, -2},
		Value:         [][]float64{{5, 5}, {1, 0}, {0, 1}},
	}
}

func testModel() *Model {
	return &Model{
		Kind:         KindDecisionTree,
		FeatureNames: moodring.FeatureNames,
		Classes:      []int{0, 1},
		Trees:        []Tree{valenceTree([]float64{10, 0}, []float64{0, 10})},
	}
}

func TestModelPredict(t *testing.T) {
	m := testModel()

	tests := []struct {
		name    string
		valence float64
		want    int
	}{
		{name: "below threshold", valence: 0.2, want: 0},
		{name: "on threshold goes left", valence: 0.5, want: 0},
		{name: "above threshold", valence: 0.9, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Predict(moodring.Features{Valence: tt.valence}.Vector())
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Predict = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestForestAveragesDistributions(t *testing.T) {
	m := &Model{
		Kind:    KindRandomForest,
		Classes: []int{0, 1},
		Trees: []Tree{
			valenceTree([]float64{0.6, 0.4}, []float64{0, 1}),
			valenceTree([]float64{0.6, 0.4}, []float64{0, 1}),
			tempoTree(),
		},
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}

	// Low valence, high tempo: 0.6+0.6+0 = 1.2 for class 0 vs 0.4+0.4+1 = 1.8 for class 1.
	got, err := m.Predict(moodring.Features{Valence: 0.1, Tempo: 140}.Vector())
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("Predict = %d, want 1", got)
	}

	// Low valence, low tempo: class 0 everywhere.
	got, err = m.Predict(moodring.Features{Valence: 0.1, Tempo: 60}.Vector())
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Predict = %d, want 0", got)
	}
}

func TestModelPredictRejectsBadInput(t *testing.T) {
	m := testModel()

	if _, err := m.Predict([]float64{0.1, 0.2}); err == nil {
		t.Error("expected error for short vector")
	}
	if _, err := m.Predict(moodring.Features{Valence: math.NaN()}.Vector()); err == nil {
		t.Error("expected error for NaN input")
	}
}

func TestModelValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Model)
	}{
		{name: "unknown type", mutate: func(m *Model) { m.Kind = "svm" }},
		{name: "no classes", mutate: func(m *Model) { m.Classes = nil }},
		{name: "wrong feature order", mutate: func(m *Model) {
			m.FeatureNames = []string{"energy", "valence", "danceability", "tempo", "acousticness", "liveness"}
		}},
		{name: "two trees in decision tree", mutate: func(m *Model) { m.Trees = append(m.Trees, m.Trees[0]) }},
		{name: "cycle", mutate: func(m *Model) { m.Trees[0].ChildrenLeft[0] = 0 }},
		{name: "unknown feature", mutate: func(m *Model) { m.Trees[0].Feature[0] = 6 }},
		{name: "short leaf value", mutate: func(m *Model) { m.Trees[0].Value[1] = []float64{1} }},
		{name: "ragged arrays", mutate: func(m *Model) { m.Trees[0].Threshold = m.Trees[0].Threshold[:2] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel()
			tt.mutate(m)
			if err := m.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLabelDecoder(t *testing.T) {
	d := &LabelDecoder{Classes: []string{"sad", "HAPPY"}}

	got, err := d.Decode(1)
	if err != nil || got != "HAPPY" {
		t.Errorf("Decode(1) = %q, %v", got, err)
	}
	if _, err := d.Decode(2); err == nil {
		t.Error("expected error for unseen label")
	}
	if _, err := d.Decode(-1); err == nil {
		t.Error("expected error for negative label")
	}
}

func TestPredictMoodNormalizesLabel(t *testing.T) {
	c := New(testModel(), &LabelDecoder{Classes: []string{" sad", "HAPPY "}})

	got, err := c.PredictMood(context.Background(), moodring.Features{Valence: 0.8})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Happy" {
		t.Errorf("PredictMood = %q, want Happy", got)
	}
}

func TestPredictMoodErrors(t *testing.T) {
	tests := []struct {
		name     string
		decoder  *LabelDecoder
		features moodring.Features
		want     string
	}{
		{
			name:     "nan feature",
			decoder:  &LabelDecoder{Classes: []string{"sad", "happy"}},
			features: moodring.Features{Valence: math.NaN()},
			want:     "Prediction failed: input contains NaN",
		},
		{
			name:     "class outside decoder",
			decoder:  &LabelDecoder{Classes: []string{"sad"}},
			features: moodring.Features{Valence: 0.9},
			want:     "Prediction failed: y contains previously unseen labels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testModel(), tt.decoder)
			_, err := c.PredictMood(context.Background(), tt.features)

			var perr *PredictionError
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a PredictionError", err)
			}
			if !strings.HasPrefix(err.Error(), tt.want) {
				t.Errorf("error = %q, want prefix %q", err, tt.want)
			}
		})
	}
}

func TestProvideClassifier(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	encoderPath := filepath.Join(dir, "encoder.json")

	model := `{
		"type": "decision_tree",
		"feature_names": ["valence", "danceability", "energy", "tempo", "acousticness", "liveness"],
		"classes": [0, 1],
		"trees": [{
			"children_left": [1, -1, -1],
			"children_right": [2, -1, -1],
			"feature": [0, -2, -2],
			"threshold": [0.5, -2, -2],
			"value": [[5, 5], [10, 0], [0, 10]]
		}]
	}`
	if err := os.WriteFile(modelPath, []byte(model), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(encoderPath, []byte(`{"classes": ["sad", "happy"]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	log, logs := logger.NewTestLogger()
	c, err := ProvideClassifier(config.Config{ModelPath: modelPath, EncoderPath: encoderPath}, log)
	if err != nil {
		t.Fatalf("ProvideClassifier: %v", err)
	}
	if logs.FilterMessage("classifier loaded").Len() != 1 {
		t.Error("expected a classifier loaded log entry")
	}

	got, err := c.PredictMood(context.Background(), moodring.Features{Valence: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Sad" {
		t.Errorf("PredictMood = %q, want Sad", got)
	}
}

func TestProvideClassifierMissingFiles(t *testing.T) {
	dir := t.TempDir()
	log, _ := logger.NewTestLogger()

	_, err := ProvideClassifier(config.Config{
		ModelPath:   filepath.Join(dir, "missing.json"),
		EncoderPath: filepath.Join(dir, "missing-encoder.json"),
	}, log)
	if err == nil {
		t.Fatal("expected error for missing model")
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadModel(corrupt); err == nil {
		t.Error("expected error for corrupt model")
	}
	if _, err := LoadLabelDecoder(corrupt); err == nil {
		t.Error("expected error for corrupt encoder")
	}
}
