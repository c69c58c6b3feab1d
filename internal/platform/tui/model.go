package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voskov/snake-tui/internal/core"
	"github.com/voskov/snake-tui/internal/game"
	"github.com/voskov/snake-tui/internal/storage"
)

// Model is the Bubble Tea model driving the snake game. It owns the
// wall-clock origin and feeds the simulation elapsed time; all game
// rules live behind game.Advance and game.HandleKey.
type Model struct {
	game       *game.Game
	view       *View
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	fps        int
	origin     time.Time
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a model for the given game. The store may be nil, in
// which case scores are session-only.
func NewModel(g *game.Game, store *storage.Store, fps, screenW, screenH int) Model {
	if store != nil {
		if best, err := store.HighScore(); err == nil {
			g.SetHighScore(best)
		}
	}

	return Model{
		game:   g,
		view:   NewView(),
		screen: core.NewScreen(screenW, screenH),
		store:  store,
		keys:   NewKeyMapper(),
		fps:    fps,
		origin: time.Now(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, isQuit := m.keys.GameKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keys.IsScoreboardKey(msg) && m.game.State() == game.StateMenu {
		sb := NewScoreboardModel(m.store, m.screen.Width(), m.screen.Height())
		m.scoreboard = &sb
		return m, nil
	}

	if key != "" {
		m.game.HandleKey(key)
	}
	return m, nil
}

// handleFrame polls the simulation with the current elapsed time and
// reacts to any events the step produced.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	events := m.game.Advance(t.Sub(m.origin))

	for _, ev := range events {
		if ev == game.EventCollision {
			m.persistRun()
		}
	}

	return m, frameCmd(m.fps)
}

// persistRun saves the finished run. Best effort: the game continues
// whether or not storage is available.
func (m Model) persistRun() {
	if m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.game.Score(), m.game.Level())
}

// updateScoreboard delegates messages while the scoreboard is open.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keep the frame loop and the simulation clock alive behind the board.
	if f, ok := msg.(FrameMsg); ok {
		m.game.Advance(time.Time(f).Sub(m.origin))
		return m, frameCmd(m.fps)
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	sb, cmd := m.scoreboard.Update(msg)
	m.scoreboard = &sb

	if sb.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if sb.Closed() {
		m.scoreboard = nil
	}
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.view.Draw(m.screen, m.game)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, store *storage.Store, fps, screenW, screenH int) error {
	model := NewModel(g, store, fps, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
