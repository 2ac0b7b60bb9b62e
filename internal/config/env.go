package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with PERONO_* variables. Variables already in the
// process environment win over the .env file. Unset variables leave the
// field alone.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(lookupDotEnv()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
