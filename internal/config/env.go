package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override CLI flag defaults.
const (
	EnvDB       = "TETRIS_DB"
	EnvConfig   = "TETRIS_CONFIG"
	EnvLogLevel = "TETRIS_LOG_LEVEL"
)

// Env holds values read from the process environment after .env loading.
type Env struct {
	DBPath     string
	ConfigPath string
	LogLevel   string
}

// LoadEnv reads an optional .env file from path (".env" when empty) and
// returns the TETRIS_* variables. A missing file is not an error; variables
// already set in the process environment win over the file.
func LoadEnv(path string) (Env, error) {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, err
	}
	return Env{
		DBPath:     os.Getenv(EnvDB),
		ConfigPath: os.Getenv(EnvConfig),
		LogLevel:   os.Getenv(EnvLogLevel),
	}, nil
}

// Or returns value when non-empty, otherwise fallback.
func Or(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
