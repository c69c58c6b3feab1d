package game

// Action is a semantic game command, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionReset
	ActionTurnUp
	ActionTurnDown
	ActionTurnLeft
	ActionTurnRight
)

// heading returns the heading a turn action maps to. Only valid for the
// four turn actions.
func (a Action) heading() Heading {
	switch a {
	case ActionTurnUp:
		return HeadingUp
	case ActionTurnDown:
		return HeadingDown
	case ActionTurnLeft:
		return HeadingLeft
	default:
		return HeadingRight
	}
}

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStart:
		return "start"
	case ActionPause:
		return "pause"
	case ActionReset:
		return "reset"
	case ActionTurnUp:
		return "turn_up"
	case ActionTurnDown:
		return "turn_down"
	case ActionTurnLeft:
		return "turn_left"
	case ActionTurnRight:
		return "turn_right"
	default:
		return "unknown"
	}
}

// MapKey translates a raw key code to a command, filtered by the current
// state. Keys that have no meaning in the given state map to ActionNone,
// so invalid-for-state input is a no-op by construction.
func MapKey(state State, key string) Action {
	switch state {
	case StateMenu:
		switch key {
		case "enter", " ":
			return ActionStart
		}

	case StatePlaying, StatePaused:
		switch key {
		case "p", "esc":
			return ActionPause
		case "r":
			return ActionReset
		case "up", "w":
			return ActionTurnUp
		case "down", "s":
			return ActionTurnDown
		case "left", "a":
			return ActionTurnLeft
		case "right", "d":
			return ActionTurnRight
		}

	case StateGameOver:
		switch key {
		case "r", "enter":
			return ActionReset
		}
	}
	return ActionNone
}
