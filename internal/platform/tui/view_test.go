package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voskov/snake-tui/internal/core"
	"github.com/voskov/snake-tui/internal/game"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testGame(seed int64) *game.Game {
	cfg := game.DefaultConfig()
	cfg.Seed = seed
	return game.New(cfg)
}

func TestViewMenuScreen(t *testing.T) {
	g := testGame(1)
	screen := core.NewScreen(60, 28)

	NewView().Draw(screen, g)

	content := screen.String()
	if !strings.Contains(content, "S N A K E") {
		t.Error("Menu screen should show the title")
	}
	if !strings.Contains(content, "Press Enter to start") {
		t.Error("Menu screen should show the start hint")
	}
	if !strings.Contains(content, "Score: 0") {
		t.Error("HUD should show the score")
	}
}

func TestViewPlayingScreen(t *testing.T) {
	g := testGame(2)
	g.Apply(game.ActionStart)
	screen := core.NewScreen(60, 28)

	NewView().Draw(screen, g)

	content := screen.String()
	if !strings.Contains(content, "O") {
		t.Error("Playing screen should draw the snake head")
	}
	if !strings.Contains(content, "*") {
		t.Error("Playing screen should draw the food")
	}
	if !strings.Contains(content, "┌") || !strings.Contains(content, "┘") {
		t.Error("Playing screen should draw the playfield border")
	}
}

func TestViewTooSmall(t *testing.T) {
	g := testGame(3)
	// Wide enough for the hint text but too short for the playfield.
	screen := core.NewScreen(30, 10)

	NewView().Draw(screen, g)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("Undersized screen should show the resize hint")
	}
}

func TestViewGameOverOverlay(t *testing.T) {
	g := testGame(4)
	g.Apply(game.ActionStart)

	// Drive the snake into the right wall.
	elapsed := time.Duration(0)
	for i := 0; i < 40 && g.State() == game.StatePlaying; i++ {
		elapsed += 200 * time.Millisecond
		g.Advance(elapsed)
	}

	screen := core.NewScreen(60, 28)
	NewView().Draw(screen, g)

	if g.State() != game.StateGameOver {
		t.Fatalf("Expected game over, got %v", g.State())
	}
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("Game over overlay missing")
	}
}

func TestKeyMapperGameKeys(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		in       string
		expected string
		quit     bool
	}{
		{"up", "up", false},
		{"k", "up", false},
		{"h", "left", false},
		{"p", "p", false},
		{"enter", "enter", false},
		{"q", "", true},
		{"ctrl+c", "", true},
		{"x", "", false},
	}

	for _, tt := range tests {
		key, quit := km.GameKey(keyMsg(tt.in))
		if key != tt.expected || quit != tt.quit {
			t.Errorf("GameKey(%q) = (%q, %v), expected (%q, %v)", tt.in, key, quit, tt.expected, tt.quit)
		}
	}
}
