package game

import "time"

// Snapshot captures the observable game state for determinism testing
// and for presentation layers that want a single read.
type Snapshot struct {
	State        State
	Score        int
	Level        int
	HighScore    int
	SnakeLen     int
	Head         Cell
	Heading      Heading
	Food         Cell
	TickInterval time.Duration
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	var head Cell
	if len(g.snake) > 0 {
		head = g.snake[0]
	}
	return Snapshot{
		State:        g.state,
		Score:        g.score,
		Level:        g.Level(),
		HighScore:    g.highScore,
		SnakeLen:     len(g.snake),
		Head:         head,
		Heading:      g.heading,
		Food:         g.food,
		TickInterval: g.tickInterval,
	}
}
