package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voskov/snake-tui/internal/config"
	"github.com/voskov/snake-tui/internal/game"
	"github.com/voskov/snake-tui/internal/platform/tui"
	"github.com/voskov/snake-tui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Enter        - Start from the menu
  P/Esc        - Pause / resume
  R            - Restart
  Tab          - High scores (from the menu)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower starting speed
  normal - Classic speed curve
  hard   - Faster starting speed
  fixed  - No speed progression

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	g := game.New(tui.GameConfigFrom(cfg, flagSeed))
	runErr := tui.Run(g, store, flagFPS, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
