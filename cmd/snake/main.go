// snake is a terminal Snake game.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake scores             - Show the high-score table
//	snake stats              - Show aggregated run statistics
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--db <path>     - Set database path (default: ~/.snake-tui/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic grid game: eat food,
grow, speed up every level, and don't hit the walls or yourself.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  stats    - View aggregated run statistics
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --difficulty hard
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (input polls per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-tui/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
