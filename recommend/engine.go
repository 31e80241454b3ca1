// Package recommend turns a mood or a song into a sample of songs that share
// that mood.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mager/moodring/classifier"
	"github.com/mager/moodring/config"
	"github.com/mager/moodring/dataset"
	"github.com/mager/moodring/mood"
	"github.com/mager/moodring/moodring"
	"go.uber.org/zap"
)

// Catalog is the read-only song table the engine samples from.
type Catalog interface {
	Len() int
	Moods() []string
	HasMood(m string) bool
	SongsByMood(m string) []moodring.Song
	SongByName(name string) (moodring.Song, bool)
}

// MoodPredictor infers a canonical mood from audio features.
type MoodPredictor interface {
	PredictMood(ctx context.Context, f moodring.Features) (string, error)
}

type MoodRecommendation struct {
	Mood  string
	Songs []string
}

type SongRecommendation struct {
	SongInput       string
	PredictedMood   string
	Recommendations []string
}

// Engine is the application context shared by all requests. Everything it
// holds is immutable after startup.
type Engine struct {
	log       *zap.SugaredLogger
	catalog   Catalog
	predictor MoodPredictor
	sampler   Sampler
}

func NewEngine(log *zap.SugaredLogger, catalog Catalog, predictor MoodPredictor, sampler Sampler) *Engine {
	return &Engine{
		log:       log,
		catalog:   catalog,
		predictor: predictor,
		sampler:   sampler,
	}
}

// Moods returns the available canonical moods, sorted.
func (e *Engine) Moods() []string {
	return e.catalog.Moods()
}

// SongCount returns the number of songs in the catalog.
func (e *Engine) SongCount() int {
	return e.catalog.Len()
}

// RecommendByMood samples songs whose mood matches query after normalization.
func (e *Engine) RecommendByMood(ctx context.Context, query string) (MoodRecommendation, error) {
	m := mood.Normalize(query)
	if m == "" {
		return MoodRecommendation{}, &ValidationError{Message: "Mood is required."}
	}
	if !e.catalog.HasMood(m) {
		return MoodRecommendation{}, &NotFoundError{Message: fmt.Sprintf("Mood '%s' not found.", m)}
	}

	pool := e.catalog.SongsByMood(m)
	if len(pool) == 0 {
		return MoodRecommendation{}, &NotFoundError{Message: fmt.Sprintf("No songs found for mood '%s'.", m)}
	}

	picked := e.sampler.Sample(pool)
	e.log.Debugw("recommend by mood", "mood", m, "pool", len(pool), "picked", len(picked))

	return MoodRecommendation{
		Mood:  m,
		Songs: songNames(picked),
	}, nil
}

// RecommendBySong predicts the mood of the named song and samples other
// songs with that mood. The queried song itself is never recommended.
func (e *Engine) RecommendBySong(ctx context.Context, query string) (SongRecommendation, error) {
	name := strings.TrimSpace(query)
	if name == "" {
		return SongRecommendation{}, &ValidationError{Message: "Song name is required."}
	}

	song, ok := e.catalog.SongByName(name)
	if !ok {
		return SongRecommendation{}, &NotFoundError{Message: fmt.Sprintf("Song '%s' not found.", name)}
	}

	predicted, err := e.predictor.PredictMood(ctx, song.Features)
	if err != nil {
		var perr *classifier.PredictionError
		if !errors.As(err, &perr) {
			perr = &classifier.PredictionError{Err: err}
		}
		return SongRecommendation{}, perr
	}

	var pool []moodring.Song
	for _, s := range e.catalog.SongsByMood(predicted) {
		if !strings.EqualFold(s.Name, name) {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		return SongRecommendation{}, &NotFoundError{Message: fmt.Sprintf("No recommendations found for mood '%s'.", predicted)}
	}

	picked := e.sampler.Sample(pool)
	e.log.Debugw("recommend by song", "song", name, "predicted_mood", predicted, "pool", len(pool), "picked", len(picked))

	return SongRecommendation{
		SongInput:       name,
		PredictedMood:   predicted,
		Recommendations: songNames(picked),
	}, nil
}

func songNames(songs []moodring.Song) []string {
	names := make([]string, len(songs))
	for i, s := range songs {
		names[i] = s.Name
	}
	return names
}

// ProvideEngine builds the engine from the loaded dataset and predictor.
func ProvideEngine(cfg config.Config, log *zap.SugaredLogger, store *dataset.Store, predictor MoodPredictor) *Engine {
	return NewEngine(log, store, predictor, NewSampler(cfg.SampleMin, cfg.SampleMax, cfg.SampleSeed))
}

var Options = ProvideEngine
