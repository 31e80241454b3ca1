// Package classifier predicts a song's mood from its audio features using a
// pretrained tree model and the label decoder it was trained with.
package classifier

import (
	"context"
	"fmt"

	"github.com/mager/moodring/config"
	"github.com/mager/moodring/mood"
	"github.com/mager/moodring/moodring"
	"go.uber.org/zap"
)

// PredictionError reports that the model could not produce a label for a
// feature vector. It is not retryable.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return "Prediction failed: " + e.Err.Error()
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

// Classifier pairs a model with its label decoder. Both are read-only after
// construction.
type Classifier struct {
	model   *Model
	decoder *LabelDecoder
}

func New(model *Model, decoder *LabelDecoder) *Classifier {
	return &Classifier{model: model, decoder: decoder}
}

// PredictMood feeds f to the model in moodring.FeatureNames order and
// returns the decoded label in canonical form.
func (c *Classifier) PredictMood(_ context.Context, f moodring.Features) (string, error) {
	class, err := c.model.Predict(f.Vector())
	if err != nil {
		return "", &PredictionError{Err: err}
	}

	label, err := c.decoder.Decode(class)
	if err != nil {
		return "", &PredictionError{Err: err}
	}

	return mood.Normalize(label), nil
}

// ProvideClassifier loads the model and label decoder named in cfg.
func ProvideClassifier(cfg config.Config, log *zap.SugaredLogger) (*Classifier, error) {
	model, err := LoadModel(cfg.ModelPath)
	if err != nil {
		log.Errorw("Failed to load model", "path", cfg.ModelPath, "error", err)
		return nil, fmt.Errorf("classifier: load model %s: %w", cfg.ModelPath, err)
	}

	decoder, err := LoadLabelDecoder(cfg.EncoderPath)
	if err != nil {
		log.Errorw("Failed to load label encoder", "path", cfg.EncoderPath, "error", err)
		return nil, fmt.Errorf("classifier: load label encoder %s: %w", cfg.EncoderPath, err)
	}

	log.Infow("classifier loaded",
		"type", model.Kind,
		"trees", len(model.Trees),
		"classes", decoder.Classes,
	)

	return New(model, decoder), nil
}

var Options = ProvideClassifier
