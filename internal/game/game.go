package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Config contains the simulation parameters.
type Config struct {
	GridW, GridH int

	// Speed curve: interval shrinks by StepDecrement per level, floored at MinInterval.
	InitialInterval time.Duration
	StepDecrement   time.Duration
	MinInterval     time.Duration

	// FoodPerLevel is how much food advances one difficulty level.
	FoodPerLevel int

	// Seed for the food placement RNG. The platform layer fills in a
	// time-based seed when zero.
	Seed int64
}

// DefaultConfig returns the classic 20x20 setup.
func DefaultConfig() Config {
	return Config{
		GridW:           20,
		GridH:           20,
		InitialInterval: 150 * time.Millisecond,
		StepDecrement:   10 * time.Millisecond,
		MinInterval:     50 * time.Millisecond,
		FoodPerLevel:    5,
	}
}

// Rand is the randomness source used for food placement.
// Injectable so tests can supply deterministic sequences.
type Rand interface {
	Intn(n int) int
}

// Game holds the complete simulation state. All mutation happens through
// Apply (commands) and Advance (time); there is a single mutator context,
// so no locking is needed.
type Game struct {
	cfg Config
	rng Rand

	state   State
	snake   []Cell // Head at index 0
	heading Heading
	pending Heading // Buffered heading, applied at the next step
	food    Cell

	score        int
	highScore    int
	tickInterval time.Duration
	lastStep     time.Duration // Elapsed-time baseline of the previous step
}

// New creates a game in the Menu state.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		state: StateMenu,
	}
}

// initRound sets up a fresh Playing state: single-cell snake at the grid
// center, heading right, score zero, fresh food.
func (g *Game) initRound() {
	g.snake = []Cell{{X: g.cfg.GridW / 2, Y: g.cfg.GridH / 2}}
	g.heading = HeadingRight
	g.pending = HeadingRight
	g.score = 0
	g.tickInterval = IntervalFor(1, g.cfg)
	g.placeFood()
	g.state = StatePlaying
}

// Apply executes a command against the current state. Commands that are
// invalid for the state are ignored. Returns the events the transition
// produced, if any.
func (g *Game) Apply(a Action) []Event {
	switch a {
	case ActionStart:
		if g.state != StateMenu {
			return nil
		}
		g.initRound()
		return []Event{EventGameStarted}

	case ActionPause:
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
		return nil

	case ActionReset:
		if g.state != StatePlaying && g.state != StatePaused && g.state != StateGameOver {
			return nil
		}
		g.initRound()
		return []Event{EventGameReset}

	case ActionTurnUp, ActionTurnDown, ActionTurnLeft, ActionTurnRight:
		if g.state != StatePlaying && g.state != StatePaused {
			return nil
		}
		g.turn(a.heading())
		return nil
	}
	return nil
}

// HandleKey maps a raw key code against the current state and applies
// the resulting command.
func (g *Game) HandleKey(key string) []Event {
	return g.Apply(MapKey(g.state, key))
}

// turn buffers a heading change for the next step. Reversals of the
// current heading are rejected.
func (g *Game) turn(h Heading) {
	if h.Opposite(g.heading) {
		return
	}
	g.pending = h
}

// Advance drives the simulation with the driver's elapsed time. At most
// one step fires per call, so dropped frames slow the game down rather
// than double-advancing it. Outside Playing the baseline slides with the
// clock, which is what makes pause resume on a full interval instead of
// catching up.
func (g *Game) Advance(elapsed time.Duration) []Event {
	if g.state != StatePlaying {
		g.lastStep = elapsed
		return nil
	}
	if elapsed-g.lastStep < g.tickInterval {
		return nil
	}
	g.lastStep = elapsed
	return g.step()
}

// step moves the snake one cell along the buffered heading and applies
// the collision, growth, and food rules.
func (g *Game) step() []Event {
	g.heading = g.pending

	dx, dy := g.heading.Vector()
	head := g.snake[0]
	next := Cell{X: head.X + dx, Y: head.Y + dy}

	if g.collides(next) {
		g.state = StateGameOver
		if g.score > g.highScore {
			g.highScore = g.score
		}
		return []Event{EventCollision}
	}

	g.snake = append([]Cell{next}, g.snake...)

	if next == g.food {
		g.score++
		g.tickInterval = IntervalFor(g.Level(), g.cfg)
		g.placeFood()
		return []Event{EventFoodEaten}
	}

	g.snake = g.snake[:len(g.snake)-1]
	return nil
}

// collides reports whether the candidate head ends the round: outside
// the grid, or on any currently occupied snake cell.
func (g *Game) collides(c Cell) bool {
	if c.X < 0 || c.X >= g.cfg.GridW || c.Y < 0 || c.Y >= g.cfg.GridH {
		return true
	}
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// placeFood picks a food cell uniformly among cells not occupied by the
// snake. The snake cannot fill the grid (a collision ends the round
// first), so an empty free list is an invariant violation.
func (g *Game) placeFood() {
	free := make([]Cell, 0, g.cfg.GridW*g.cfg.GridH-len(g.snake))
	for y := 0; y < g.cfg.GridH; y++ {
		for x := 0; x < g.cfg.GridW; x++ {
			c := Cell{X: x, Y: y}
			if !g.occupied(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		panic(fmt.Sprintf("game: no free cell for food, snake length %d on %dx%d grid",
			len(g.snake), g.cfg.GridW, g.cfg.GridH))
	}
	g.food = free[g.rng.Intn(len(free))]
}

// occupied reports whether the snake covers the given cell.
func (g *Game) occupied(c Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// State returns the current top-level state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the difficulty level derived from the score.
func (g *Game) Level() int {
	return LevelFor(g.score, g.cfg.FoodPerLevel)
}

// TickInterval returns the current time between steps.
func (g *Game) TickInterval() time.Duration {
	return g.tickInterval
}

// Heading returns the direction used at the last step.
func (g *Game) Heading() Heading {
	return g.heading
}

// Snake returns a copy of the snake's cells, head first.
func (g *Game) Snake() []Cell {
	out := make([]Cell, len(g.snake))
	copy(out, g.snake)
	return out
}

// Food returns the current food cell.
func (g *Game) Food() Cell {
	return g.food
}

// GridSize returns the grid dimensions.
func (g *Game) GridSize() (w, h int) {
	return g.cfg.GridW, g.cfg.GridH
}

// HighScore returns the best score seen at a terminal collision, or the
// value seeded via SetHighScore, whichever is higher.
func (g *Game) HighScore() int {
	return g.highScore
}

// SetHighScore seeds the session high score, typically from persistent
// storage at startup.
func (g *Game) SetHighScore(v int) {
	if v > g.highScore {
		g.highScore = v
	}
}
