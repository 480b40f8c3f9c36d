package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the game only reacts to intents.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, K, Up arrow
	ActionDown               // S, J, Down arrow
	ActionLeft               // A, H, Left arrow
	ActionRight              // D, L, Right arrow
	ActionStart              // Space, Enter
	ActionPause              // P
	ActionRestart            // R
	ActionEasy               // 1
	ActionMedium             // 2
	ActionHard               // 3
	ActionNextDifficulty     // Tab
	ActionHelp               // ?
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionNextDifficulty:
		return "NextDifficulty"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
