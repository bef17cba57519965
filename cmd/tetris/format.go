package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// printScores writes a ranked table, best first.
func printScores(out io.Writer, title, gameID string, scores []storage.HighScore) {
	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tetris play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.At.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", scores[0].Score)
}
