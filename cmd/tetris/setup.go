package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// logLevel is resolved by setup from --log-level or the environment.
var logLevel = log.InfoLevel

// setup applies .env overrides and pushes config and difficulty to the game.
// Flags given on the command line win over the environment.
func setup(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv("")
	if err != nil {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.Or(env.DBPath, flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfig = config.Or(env.ConfigPath, flagConfig)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.Or(env.LogLevel, flagLogLevel)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logLevel = level

	preset, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		return fmt.Errorf("invalid --difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)
	return nil
}

// newLogger creates the structured logger shared by all components.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           logLevel,
	})
}

// tuiLogger logs to ~/.tetris/tetris.log so the alt screen stays clean.
// The returned close func is always safe to call.
func tuiLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	dir := filepath.Join(home, ".tetris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tetris.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	return newLogger(f, "tetris"), func() { _ = f.Close() }
}

// storeLimit is the configured high-score list length.
func storeLimit() int {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return storage.DefaultLimit
	}
	return cfg.HighScores.Limit
}

// openStore opens the configured score store.
func openStore() (storage.Store, error) {
	return storage.Open(flagDBPath, storeLimit())
}

// runtimeConfig builds the runtime config for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
