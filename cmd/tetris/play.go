package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or pick one from a menu.

Variants:
  tetris          - Cleared rows are removed and everything above falls
  tetris_classic  - Original row compaction (the top two rows never shift)

Controls:
  Left/Right  - Move
  Up          - Rotate
  Down        - Soft drop
  Space       - Hard drop
  P           - Pause
  Esc         - Quit (asks for confirmation)
  N           - New game (after game over)
  S           - High scores (after game over)
  Ctrl+S      - Save a screenshot to ~/.tetris/screenshots

Difficulty options:
  easy   - Slower start, slower speed-up
  normal - Configured gravity
  hard   - Faster start

Examples:
  tetris play
  tetris play tetris_classic
  tetris play --difficulty hard --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runMenu(cmd, args)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'tetris list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	store, err := openStore()
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		logger.Warn("could not open score store", "db", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	if err := tui.Run(game, store, runtimeConfig(width, height), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runMenu loops between the variant menu, the game and the score viewer.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := tuiLogger()
	defer closeLog()

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		logger.Warn("could not open score store", "db", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := runtimeConfig(width, height)

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, tui.WithScoreboardLogger(logger))
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}

		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, runCfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}

// terminalSize probes stdout, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
