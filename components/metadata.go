package components

// String returns the display name for a BehaviorState.
func (s BehaviorState) String() string {
	names := BehaviorStateNames()
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// BehaviorStateNames returns the display names for all behaviour states.
// The order matches the BehaviorState constants.
func BehaviorStateNames() []string {
	return []string{"Idling", "Walking", "Attacking", "Dying"}
}

// Clip returns the animation clip name played in this state.
func (s BehaviorState) Clip() string {
	switch s {
	case StateWalking:
		return ClipWalking
	case StateAttacking:
		return ClipAttacking
	case StateDying:
		return ClipDying
	default:
		return ClipIdling
	}
}
