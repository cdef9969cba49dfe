package renderer

// State selects the character tint.
type State int

const (
	StateIdle State = iota
	StateMoving
	StateRolling
	StateStunned
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateRolling:
		return "rolling"
	case StateStunned:
		return "stunned"
	default:
		return "unknown"
	}
}

// CharacterState picks the displayed state. A roll outranks a stun,
// which outranks plain movement.
func CharacterState(moving, rolling, stunned bool) State {
	switch {
	case rolling:
		return StateRolling
	case stunned:
		return StateStunned
	case moving:
		return StateMoving
	default:
		return StateIdle
	}
}

// StateTint returns the RGB tint for s.
func StateTint(s State) [3]float32 {
	switch s {
	case StateMoving:
		return [3]float32{0.3, 0.85, 0.4}
	case StateRolling:
		return [3]float32{0.3, 0.6, 1.0}
	case StateStunned:
		return [3]float32{1.0, 0.35, 0.3}
	default:
		return [3]float32{0.85, 0.85, 0.85}
	}
}
