package tui

import (
	"fmt"

	"github.com/voskov/snake-tui/internal/core"
	"github.com/voskov/snake-tui/internal/game"
)

const hudHeight = 2

// View draws a game snapshot into a screen buffer. The simulation core
// knows nothing about rendering; this is the one place that maps game
// state to characters and colors.
type View struct{}

// NewView creates a game view.
func NewView() *View {
	return &View{}
}

// Draw renders the full frame: HUD, playfield border, entities, and any
// state overlay.
func (v *View) Draw(dst *core.Screen, g *game.Game) {
	dst.Clear()

	gridW, gridH := g.GridSize()
	snap := g.Snapshot()

	v.drawHUD(dst, snap)

	if dst.Width() < gridW+2 || dst.Height() < gridH+hudHeight+2 {
		v.drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Border box around the playfield, centered below the HUD
	offX := (dst.Width() - gridW) / 2
	offY := hudHeight + 1
	dst.DrawBox(core.NewRect(offX-1, offY-1, gridW+2, gridH+2), core.ColorGray)

	if snap.State != game.StateMenu {
		v.drawEntities(dst, g, offX, offY)
	}

	switch snap.State {
	case game.StateMenu:
		v.drawOverlay(dst, "S N A K E", "Press Enter to start")
	case game.StatePaused:
		v.drawOverlay(dst, "Paused", "P resumes, R restarts")
	case game.StateGameOver:
		line2 := "Press R to restart"
		if snap.Score > 0 && snap.Score == snap.HighScore {
			line2 = "New best! Press R to restart"
		}
		v.drawOverlay(dst, fmt.Sprintf("Game Over - Score %d", snap.Score), line2)
	}
}

// drawHUD draws the top status bar.
func (v *View) drawHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Snake  Score: %d  Level: %d  Best: %d", snap.Score, snap.Level, snap.HighScore)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawEntities draws the snake and the food at the given playfield offset.
func (v *View) drawEntities(dst *core.Screen, g *game.Game, offX, offY int) {
	for i, seg := range g.Snake() {
		if i == 0 {
			dst.SetColored(offX+seg.X, offY+seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(offX+seg.X, offY+seg.Y, 'o', core.ColorGreen)
		}
	}

	food := g.Food()
	dst.SetColored(offX+food.X, offY+food.Y, '*', core.ColorYellow)
}

// drawOverlay draws a centered two-line message box.
func (v *View) drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	box := core.NewRect(
		(dst.Width()-maxLen-4)/2,
		(dst.Height()-5)/2,
		maxLen+4,
		5,
	)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
