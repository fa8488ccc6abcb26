// Package components defines ECS components for the game.
package components

// BehaviorState is the current state of a war machine's behaviour machine.
type BehaviorState uint8

const (
	StateIdling    BehaviorState = iota // Waiting for a sheep to come into spotting range
	StateWalking                        // Pursuing the nearest spotted sheep
	StateAttacking                      // Playing a single strike
	StateDying                          // Playing the death clip, removed when it finishes
)

// Health tracks how much damage a creature can still take.
// A creature is removed once Current drops to zero or below.
type Health struct {
	Current float64
	Max     float64
}

// Fraction returns Current/Max clamped to [0, 1], used for health bars.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := h.Current / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Depleted reports whether the creature should die.
func (h Health) Depleted() bool {
	return h.Current <= 0
}

// Speed is the movement speed in world units per second.
type Speed struct {
	Value float64
}

// Attack holds a creature's offensive stats.
// SpottingRange is expected to be at least Range but this is not enforced.
type Attack struct {
	Damage        float64
	Range         float64
	SpottingRange float64
}

// WarMachine marks a hostile unit.
type WarMachine struct {
	ID    uint32
	Level int // level sum its stats were derived from
}

// Behavior holds a war machine's state machine.
// HasStarted is the one-shot flag of the Attacking state.
type Behavior struct {
	State      BehaviorState
	HasStarted bool
}

// Drag marks the sheep currently held by the pointer.
type Drag struct{}
