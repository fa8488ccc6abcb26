// Package round runs the battle round lifecycle: timer, outcome and level progression.
package round

// Outcome is the result of a battle round.
type Outcome uint8

const (
	StillPlaying Outcome = iota
	Victory              // every war machine was destroyed
	GameOver             // every sheep fell while war machines remain
	Draw                 // the timer ran out with both sides standing
)

// String returns the log name of the outcome.
func (o Outcome) String() string {
	switch o {
	case StillPlaying:
		return "still_playing"
	case Victory:
		return "victory"
	case GameOver:
		return "game_over"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Decided reports whether the round is over.
func (o Outcome) Decided() bool {
	return o != StillPlaying
}
