package game

import "testing"

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		key      string
		expected Action
	}{
		{"enter starts from menu", StateMenu, "enter", ActionStart},
		{"space starts from menu", StateMenu, " ", ActionStart},
		{"direction ignored in menu", StateMenu, "up", ActionNone},
		{"reset ignored in menu", StateMenu, "r", ActionNone},

		{"p pauses while playing", StatePlaying, "p", ActionPause},
		{"esc pauses while playing", StatePlaying, "esc", ActionPause},
		{"r resets while playing", StatePlaying, "r", ActionReset},
		{"arrow turns while playing", StatePlaying, "up", ActionTurnUp},
		{"wasd turns while playing", StatePlaying, "a", ActionTurnLeft},
		{"enter ignored while playing", StatePlaying, "enter", ActionNone},

		{"p resumes while paused", StatePaused, "p", ActionPause},
		{"direction buffers while paused", StatePaused, "s", ActionTurnDown},
		{"r resets while paused", StatePaused, "r", ActionReset},

		{"r resets from game over", StateGameOver, "r", ActionReset},
		{"enter resets from game over", StateGameOver, "enter", ActionReset},
		{"direction ignored in game over", StateGameOver, "left", ActionNone},
		{"pause ignored in game over", StateGameOver, "p", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKey(tt.state, tt.key); got != tt.expected {
				t.Errorf("MapKey(%v, %q) = %v, expected %v", tt.state, tt.key, got, tt.expected)
			}
		})
	}
}
