package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr string `default:":8080"`

	DatasetPath string `default:"enhanced_song_dataset.csv"`
	ModelPath   string `default:"mood_predictor_model.json"`
	EncoderPath string `default:"label_encoder.json"`

	// DatabaseDriver switches the dataset source from the CSV file to a SQL
	// table. Supported drivers are "postgres" and "sqlite3".
	DatabaseDriver string
	DatabaseURL    string
	DatasetTable   string `default:"songs"`

	SampleSeed int64 `default:"42"`
	SampleMin  int   `default:"5"`
	SampleMax  int   `default:"8"`

	CORSOrigins []string `default:"*"`
	LogLevel    string   `default:"info"`
}

// Validate reports configuration that the service cannot start with.
func (c Config) Validate() error {
	if c.SampleMin < 1 {
		return fmt.Errorf("config: sample min must be positive, got %d", c.SampleMin)
	}
	if c.SampleMin > c.SampleMax {
		return fmt.Errorf("config: sample min %d exceeds sample max %d", c.SampleMin, c.SampleMax)
	}
	switch c.DatabaseDriver {
	case "":
	case "postgres", "sqlite3":
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: database url is required for driver %q", c.DatabaseDriver)
		}
	default:
		return fmt.Errorf("config: unsupported database driver %q", c.DatabaseDriver)
	}
	return nil
}

func ProvideConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("moodring", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var Options = ProvideConfig
