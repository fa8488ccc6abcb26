package game

import "context"

// Options holds configuration for game initialization.
type Options struct {
	Seed       int64           // RNG seed
	OutputDir  string          // rounds.csv / perf.csv / config.yaml destination, empty disables output
	StartLevel int             // overrides round.start_level when > 0
	Context    context.Context // parent context for trace spans, defaults to Background
}

// Phase is the current screen of the game.
type Phase uint8

const (
	PhaseHerding Phase = iota // breeding sheep in the pen
	PhaseBattle               // timed combat against war machines
	PhaseReport               // results screen, waiting for confirmation
)

// String returns the log name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseHerding:
		return "herding"
	case PhaseBattle:
		return "battle"
	case PhaseReport:
		return "report"
	default:
		return "unknown"
	}
}

// Cue is a one-shot event for the host, e.g. to play a sound.
type Cue uint8

const (
	CueAttack      Cue = iota // a war machine started its attack swing
	CueBattleStart            // the battle phase began
	CueBattleEnd              // the round outcome was decided
	CueBreed                  // two sheep merged
)

// String returns the log name of the cue.
func (c Cue) String() string {
	switch c {
	case CueAttack:
		return "attack"
	case CueBattleStart:
		return "battle_start"
	case CueBattleEnd:
		return "battle_end"
	case CueBreed:
		return "breed"
	default:
		return "unknown"
	}
}
