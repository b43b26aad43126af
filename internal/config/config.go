package config

import (
	"errors"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-showdown/internal/rng"
	"holdem-showdown/internal/util"
)

// Config provides configuration for the showdown server and console
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr" validate:"required"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Deck struct {
		// Seed makes every shuffle reproducible when non-zero
		Seed int64 `yaml:"seed" envconfig:"seed" validate:"gte=0"`
		// Crypto shuffles with crypto/rand when no seed is set
		Crypto bool `yaml:"crypto" envconfig:"crypto"`
	} `yaml:"deck"`
	Audit bool `yaml:"audit" envconfig:"audit"`
	CORS  struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}
	cfg.Log.Level = "info"
	cfg.Deck.Crypto = true
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error: the defaults and environment are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SHOWDOWN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("showdown", &cfg); err != nil {
		return err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// NewGenerator returns a new random source for shuffling
// Generators are not shared, so each caller should ask for its own.
func (c Config) NewGenerator() rng.Generator {
	if c.Deck.Seed != 0 {
		return rng.NewSeeded(c.Deck.Seed)
	}

	if c.Deck.Crypto {
		return rng.Crypto{}
	}

	return rng.NewSeeded(0)
}
