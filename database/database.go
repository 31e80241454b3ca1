package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"regexp"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mager/moodring/config"
	"github.com/mager/moodring/moodring"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideDatabase provides a SQL client for the configured dataset table.
// It returns a nil *sql.DB when no driver is configured, in which case the
// dataset is read from CSV.
func ProvideDatabase(lc fx.Lifecycle, logger *zap.SugaredLogger, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseDriver == "" {
		return nil, nil
	}

	db, err := sql.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Errorw("Failed to open database connection", "driver", cfg.DatabaseDriver, "error", err)
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		logger.Errorw("Failed to ping database", "driver", cfg.DatabaseDriver, "error", err)
		db.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

var Options = ProvideDatabase

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// LoadSongs reads every row of table ordered by its id column. The table
// must have id, song_name, mood and one column per feature in
// moodring.FeatureNames. NULL moods become moodring.MissingMood and NULL
// features become NaN.
func LoadSongs(ctx context.Context, db *sql.DB, table string) ([]moodring.Song, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	query := fmt.Sprintf(`
		SELECT song_name, mood, valence, danceability, energy, tempo, acousticness, liveness
		FROM %s
		ORDER BY id
	`, table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []moodring.Song
	for rows.Next() {
		var (
			name, mood sql.NullString
			features   [6]sql.NullFloat64
		)
		err := rows.Scan(
			&name, &mood,
			&features[0], &features[1], &features[2],
			&features[3], &features[4], &features[5],
		)
		if err != nil {
			return nil, err
		}

		song := moodring.Song{Name: name.String, Mood: mood.String}
		if !mood.Valid {
			song.Mood = moodring.MissingMood
		}

		values := make([]float64, len(features))
		for i, f := range features {
			values[i] = math.NaN()
			if f.Valid {
				values[i] = f.Float64
			}
		}
		song.Features = moodring.FeaturesFromVector(values)

		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return songs, nil
}
