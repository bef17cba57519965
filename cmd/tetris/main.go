// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                     - Pick a variant from a menu and play
//	tetris play [variant]      - Play a variant directly
//	tetris list                - List available variants
//	tetris scores [variant]    - Show high scores
//	tetris serve               - Start SSH server (and optional HTTP API)
//	tetris config              - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <dsn>            - Score store: SQLite path, *.json, redis://, postgres://
//	--config <path>       - Custom tetris.yaml
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

const defaultDBPath = "~/.tetris/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris for the terminal, playable locally or over SSH.

Available commands:
  play     - Play a variant directly
  list     - Show all variants
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  tetris
  tetris play tetris_classic --difficulty hard
  tetris scores
  tetris serve --ssh :2222 --http :8080
  tetris --db redis://localhost:6379/0 play`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", defaultDBPath, "Score store: SQLite path, *.json file, redis:// or postgres:// URL (env TETRIS_DB)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml (env TETRIS_CONFIG)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env TETRIS_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
