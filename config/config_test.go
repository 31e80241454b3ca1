package config

import (
	"testing"
)

func TestProvideConfigDefaults(t *testing.T) {
	cfg, err := ProvideConfig()
	if err != nil {
		t.Fatalf("ProvideConfig: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.SampleSeed != 42 || cfg.SampleMin != 5 || cfg.SampleMax != 8 {
		t.Errorf("sampling = (%d, %d, %d), want (42, 5, 8)", cfg.SampleSeed, cfg.SampleMin, cfg.SampleMax)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

func TestProvideConfigFromEnv(t *testing.T) {
	t.Setenv("MOODRING_DATASETPATH", "/data/songs.csv")
	t.Setenv("MOODRING_SAMPLEMAX", "10")
	t.Setenv("MOODRING_CORSORIGINS", "http://a.test,http://b.test")

	cfg, err := ProvideConfig()
	if err != nil {
		t.Fatalf("ProvideConfig: %v", err)
	}
	if cfg.DatasetPath != "/data/songs.csv" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.SampleMax != 10 {
		t.Errorf("SampleMax = %d, want 10", cfg.SampleMax)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want 2 entries", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	base := Config{SampleMin: 5, SampleMax: 8}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "min above max", mutate: func(c *Config) { c.SampleMin = 9 }, wantErr: true},
		{name: "zero min", mutate: func(c *Config) { c.SampleMin = 0 }, wantErr: true},
		{name: "sqlite without url", mutate: func(c *Config) { c.DatabaseDriver = "sqlite3" }, wantErr: true},
		{name: "postgres with url", mutate: func(c *Config) {
			c.DatabaseDriver = "postgres"
			c.DatabaseURL = "postgres://localhost/moodring"
		}},
		{name: "unknown driver", mutate: func(c *Config) {
			c.DatabaseDriver = "mysql"
			c.DatabaseURL = "x"
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
