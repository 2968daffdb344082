package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvFile is loaded when present and no env file is given explicitly
const defaultEnvFile = ".env"

// loadEnvFiles exports the variables from the given dotenv files into the
// process environment without overriding variables that are already set.
// With no files, the default .env is loaded if it exists.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", defaultEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("error loading env files: %w", err)
	}
	return nil
}

// parseEnv populates cfg from environment variables using the `env` and
// `envPrefix` tags, e.g. VORBOTE_WEB_DEV_JWT_SECRET. Unset variables leave
// their fields untouched.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
