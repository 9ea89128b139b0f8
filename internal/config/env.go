package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds overrides read from the environment. They apply on top of
// the config file and below CLI flags.
type EnvConfig struct {
	Seed      *int64  `env:"TUIARCADE_SEED"`
	WordsFile *string `env:"TUIARCADE_WORDS_FILE"`
	FPS       *int    `env:"TUIARCADE_FPS"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Merge applies the environment overrides to the file config.
func (e EnvConfig) Merge(cfg *GameConfig) {
	if e.Seed != nil {
		cfg.Seed = e.Seed
	}
	if e.WordsFile != nil {
		cfg.WordsFile = e.WordsFile
	}
	if e.FPS != nil {
		cfg.FPS = e.FPS
	}
}
