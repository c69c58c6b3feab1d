package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voskov/snake-tui/internal/storage"
)

var flagStatsClear bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated run statistics",
	Long: `Display aggregated statistics over all recorded runs.

Examples:
  snake stats
  snake stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete all recorded runs")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded runs deleted.")
		return
	}

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Snake - Statistics")
	fmt.Println()
	fmt.Printf("  Runs played:  %d\n", stats.Runs)
	fmt.Printf("  High score:   %d\n", stats.HighScore)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Total food:   %d\n", stats.TotalScore)
	fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}
