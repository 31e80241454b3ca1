// Package dataset holds the song table the recommendations are drawn from.
// A Store is built once at startup and is read-only afterwards, so it is
// safe for concurrent use without locking.
package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/mager/moodring/config"
	"github.com/mager/moodring/database"
	"github.com/mager/moodring/mood"
	"github.com/mager/moodring/moodring"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// Store is an ordered, immutable collection of songs indexed by mood.
type Store struct {
	songs  []moodring.Song
	moods  []string
	byMood map[string][]moodring.Song
}

// New normalizes the mood of every song and indexes the result. Load order
// is preserved everywhere, which makes name lookups and mood pools stable.
func New(songs []moodring.Song) *Store {
	s := &Store{
		songs:  make([]moodring.Song, len(songs)),
		byMood: make(map[string][]moodring.Song),
	}
	for i, song := range songs {
		song.Mood = mood.Normalize(song.Mood)
		s.songs[i] = song
		s.byMood[song.Mood] = append(s.byMood[song.Mood], song)
	}

	s.moods = maps.Keys(s.byMood)
	slices.Sort(s.moods)

	return s
}

// Len reports the number of songs in the store.
func (s *Store) Len() int {
	return len(s.songs)
}

// Songs returns every song in load order.
func (s *Store) Songs() []moodring.Song {
	return slices.Clone(s.songs)
}

// Moods returns the distinct canonical moods sorted ascending.
func (s *Store) Moods() []string {
	return slices.Clone(s.moods)
}

// HasMood reports whether m is one of the available moods. m must already
// be canonical.
func (s *Store) HasMood(m string) bool {
	_, ok := s.byMood[m]
	return ok
}

// SongsByMood returns the songs whose canonical mood equals m exactly.
func (s *Store) SongsByMood(m string) []moodring.Song {
	return slices.Clone(s.byMood[m])
}

// SongByName returns the first song whose name matches name ignoring case.
func (s *Store) SongByName(name string) (moodring.Song, bool) {
	for _, song := range s.songs {
		if strings.EqualFold(song.Name, name) {
			return song, true
		}
	}
	return moodring.Song{}, false
}

// ProvideStore loads the dataset from the configured SQL table when a
// database is configured, and from the CSV file otherwise. Any failure here
// aborts startup.
func ProvideStore(cfg config.Config, db *sql.DB, log *zap.SugaredLogger) (*Store, error) {
	var (
		songs  []moodring.Song
		source string
		err    error
	)

	if db != nil {
		source = cfg.DatabaseDriver + ":" + cfg.DatasetTable
		songs, err = database.LoadSongs(context.Background(), db, cfg.DatasetTable)
	} else {
		source = cfg.DatasetPath
		songs, err = LoadCSV(cfg.DatasetPath)
	}
	if err != nil {
		log.Errorw("Failed to load dataset", "source", source, "error", err)
		return nil, fmt.Errorf("dataset: load %s: %w", source, err)
	}

	store := New(songs)
	log.Infow("dataset loaded", "source", source, "songs", store.Len(), "moods", store.Moods())

	return store, nil
}

var Options = ProvideStore
