package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mager/moodring/moodring"
)

const (
	colSongName = "song_name"
	colMood     = "mood"
)

// naValues are the cell values treated as missing, matching what common
// data tooling writes for empty cells.
var naValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isNA(v string) bool {
	_, ok := naValues[v]
	return ok
}

// LoadCSV reads a song table from path. The header must name song_name,
// mood and every feature in moodring.FeatureNames; other columns are ignored.
func LoadCSV(path string) ([]moodring.Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(bufio.NewReader(f))
}

// ReadCSV parses a song table from r. Missing moods become
// moodring.MissingMood and missing features become NaN; a feature cell that
// is present but not a number is an error.
func ReadCSV(r io.Reader) ([]moodring.Song, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty dataset: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	required := append([]string{colSongName, colMood}, moodring.FeatureNames...)
	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var songs []moodring.Song
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		song, err := parseRecord(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		songs = append(songs, song)
	}

	return songs, nil
}

func parseRecord(rec []string, cols map[string]int) (moodring.Song, error) {
	var song moodring.Song

	if name := rec[cols[colSongName]]; !isNA(name) {
		song.Name = name
	}

	song.Mood = rec[cols[colMood]]
	if isNA(song.Mood) {
		song.Mood = moodring.MissingMood
	}

	values := make([]float64, len(moodring.FeatureNames))
	for i, name := range moodring.FeatureNames {
		cell := strings.TrimSpace(rec[cols[name]])
		if isNA(cell) {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return moodring.Song{}, fmt.Errorf("column %s: %q is not a number", name, cell)
		}
		values[i] = v
	}
	song.Features = moodring.FeaturesFromVector(values)

	return song, nil
}
