// Package game implements the Snake simulation core: grid, entities,
// state machine, stepping, and input mapping. It contains no UI or
// timing dependencies; an external driver feeds it elapsed time and
// key codes, which keeps every transition deterministic and testable.
package game

// Cell is a discrete grid coordinate.
type Cell struct {
	X, Y int
}

// Heading is the snake's direction of travel.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// Vector returns the unit step for this heading.
func (h Heading) Vector() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite reports whether two headings are direct reversals of each other.
func (h Heading) Opposite(other Heading) bool {
	return (h == HeadingUp && other == HeadingDown) ||
		(h == HeadingDown && other == HeadingUp) ||
		(h == HeadingLeft && other == HeadingRight) ||
		(h == HeadingRight && other == HeadingLeft)
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// State is the game's top-level state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a discrete named occurrence surfaced from state transitions.
// Presentation layers may render these as sound or animation; the core
// does not care whether they are consumed.
type Event int

const (
	EventGameStarted Event = iota
	EventFoodEaten
	EventCollision
	EventGameReset
)

func (e Event) String() string {
	switch e {
	case EventGameStarted:
		return "game_started"
	case EventFoodEaten:
		return "food_eaten"
	case EventCollision:
		return "collision"
	case EventGameReset:
		return "game_reset"
	default:
		return "unknown"
	}
}
