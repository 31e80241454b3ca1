package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/mager/moodring/moodring"
)

const (
	KindDecisionTree = "decision_tree"
	KindRandomForest = "random_forest"

	leaf = -1
)

// Tree is a fitted CART tree in flat array form: node i splits on
// Feature[i] at Threshold[i], sending x <= threshold to ChildrenLeft[i] and
// everything else to ChildrenRight[i]. Leaves have both children set to -1
// and carry a per-class weight vector in Value[i].
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// Model is a tree ensemble exported from a trained classifier. Classes holds
// the encoded label for each column of the leaf value vectors.
type Model struct {
	Kind         string   `json:"type"`
	FeatureNames []string `json:"feature_names"`
	Classes      []int    `json:"classes"`
	Trees        []Tree   `json:"trees"`
}

// LoadModel reads and validates a model file.
func LoadModel(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the model can be evaluated on a moodring feature
// vector without going out of bounds or looping.
func (m *Model) Validate() error {
	switch m.Kind {
	case KindDecisionTree:
		if len(m.Trees) != 1 {
			return fmt.Errorf("model: decision tree must have exactly one tree, got %d", len(m.Trees))
		}
	case KindRandomForest:
		if len(m.Trees) == 0 {
			return errors.New("model: random forest has no trees")
		}
	default:
		return fmt.Errorf("model: unsupported type %q", m.Kind)
	}

	if len(m.FeatureNames) > 0 && !slices.Equal(m.FeatureNames, moodring.FeatureNames) {
		return fmt.Errorf("model: trained on features %v, want %v", m.FeatureNames, moodring.FeatureNames)
	}
	if len(m.Classes) == 0 {
		return errors.New("model: no classes")
	}

	for i, t := range m.Trees {
		if err := t.validate(len(moodring.FeatureNames), len(m.Classes)); err != nil {
			return fmt.Errorf("model: tree %d: %w", i, err)
		}
	}
	return nil
}

func (t Tree) validate(nFeatures, nClasses int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return errors.New("no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return errors.New("node arrays differ in length")
	}

	for i := 0; i < n; i++ {
		l, r := t.ChildrenLeft[i], t.ChildrenRight[i]
		if l == leaf || r == leaf {
			if l != r {
				return fmt.Errorf("node %d has a single child", i)
			}
			if len(t.Value[i]) != nClasses {
				return fmt.Errorf("leaf %d has %d class weights, want %d", i, len(t.Value[i]), nClasses)
			}
			continue
		}
		// Children always come after their parent, so traversal terminates.
		if l <= i || l >= n || r <= i || r >= n {
			return fmt.Errorf("node %d has out of order children %d, %d", i, l, r)
		}
		if f := t.Feature[i]; f < 0 || f >= nFeatures {
			return fmt.Errorf("node %d splits on unknown feature %d", i, f)
		}
	}
	return nil
}

// leafValue walks the tree for x and returns the leaf class weights.
func (t Tree) leafValue(x []float64) []float64 {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// Predict returns the encoded class for x. For forests the per-tree class
// distributions are averaged and the most probable class wins; ties go to
// the lowest class index.
func (m *Model) Predict(x []float64) (int, error) {
	if len(x) != len(moodring.FeatureNames) {
		return 0, fmt.Errorf("X has %d features, but model is expecting %d features as input", len(x), len(moodring.FeatureNames))
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("input contains NaN or infinity in feature %s", moodring.FeatureNames[i])
		}
	}

	proba := make([]float64, len(m.Classes))
	for _, t := range m.Trees {
		value := t.leafValue(x)
		var total float64
		for _, w := range value {
			total += w
		}
		if total <= 0 {
			continue
		}
		for j, w := range value {
			proba[j] += w / total
		}
	}

	best := 0
	for j := 1; j < len(proba); j++ {
		if proba[j] > proba[best] {
			best = j
		}
	}
	return m.Classes[best], nil
}
