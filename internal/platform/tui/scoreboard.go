package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voskov/snake-tui/internal/core"
	"github.com/voskov/snake-tui/internal/storage"
)

const maxScoreRows = 10

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	scoreboardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ScoreboardModel is the Bubble Tea model for the high-score screen,
// opened from the game's menu state.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	stats    *storage.Stats
	width    int
	height   int
	quitting bool
	closed   bool
}

// NewScoreboardModel loads the top runs and builds the scoreboard.
// A nil store yields an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 7},
		{Title: "Date", Width: 18},
	}

	var rows []table.Row
	var stats *storage.Stats
	if store != nil {
		if entries, err := store.TopScores(maxScoreRows); err == nil {
			for i, e := range entries {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%d", e.Score),
					fmt.Sprintf("%d", e.Level),
					e.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
		if s, err := store.GetStats(); err == nil {
			stats = s
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Min(len(rows)+1, maxScoreRows+1)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2"))
	t.SetStyles(styles)

	return ScoreboardModel{
		table:  t,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		stats:  stats,
		width:  width,
		height: height,
	}
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := scoreboardTitleStyle.Render("High Scores")

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = scoreboardStatsStyle.Render("No runs recorded yet.")
	}

	statsLine := ""
	if m.stats != nil && m.stats.Runs > 0 {
		statsLine = scoreboardStatsStyle.Render(
			fmt.Sprintf("%d runs, best %d, average %.1f", m.stats.Runs, m.stats.HighScore, m.stats.AvgScore),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", statsLine, m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Quitting reports whether the user asked to exit the program.
func (m ScoreboardModel) Quitting() bool {
	return m.quitting
}

// Closed reports whether the user navigated back to the menu.
func (m ScoreboardModel) Closed() bool {
	return m.closed
}
