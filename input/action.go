package input

// Action is an abstract input action the simulation consumes
// The input collaborator resolves device state to a normalized intensity
// in [0,1] per action, once per tick
type Action uint8

const (
	ActionAccelerate Action = iota
	ActionBrake
	ActionSteerLeft
	ActionSteerRight
	ActionHandbrake
	ActionShiftUp
	ActionShiftDown
	ActionToggleCamera
	ActionPause

	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionAccelerate:
		return "accelerate"
	case ActionBrake:
		return "brake"
	case ActionSteerLeft:
		return "steer_left"
	case ActionSteerRight:
		return "steer_right"
	case ActionHandbrake:
		return "handbrake"
	case ActionShiftUp:
		return "shift_up"
	case ActionShiftDown:
		return "shift_down"
	case ActionToggleCamera:
		return "toggle_camera"
	case ActionPause:
		return "pause"
	}
	return "unknown"
}

// ActionByName resolves canonical config names to actions
// Used by the keymap config loader
func ActionByName(name string) (Action, bool) {
	for a := Action(0); a < actionCount; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}
