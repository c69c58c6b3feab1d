package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voskov/snake-tui/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top recorded runs.

Examples:
  snake scores
  snake scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	high, err := store.HighScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
}
