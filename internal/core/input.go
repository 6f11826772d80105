package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the session applies them.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow - move shooter left
	ActionRight        // Right arrow - move shooter right
	ActionFire         // Space - fire a projectile
	ActionQuit         // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
