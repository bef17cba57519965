package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the high-score table for a variant (default: tetris).

Examples:
  tetris scores
  tetris scores tetris_classic
  tetris scores --db ./scores.json
  tetris scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := string(tetris.VariantModern)
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'tetris list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("cannot open score store: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.Clear(ctx, gameID); err != nil {
			return fmt.Errorf("cannot clear scores: %w", err)
		}
		fmt.Fprintf(out, "Cleared high scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.Top(ctx, gameID, 0)
	if errors.Is(err, storage.ErrCorrupt) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	printScores(out, game.Title(), gameID, scores)
	return nil
}
