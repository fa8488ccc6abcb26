package round

import (
	"fmt"
	"log/slog"
)

// Result summarises a finished round for the report screen.
type Result struct {
	Outcome          Outcome
	Level            int // level the round was fought at
	WarMachinesSlain int
	SheepSlain       int
	RewardSheep      int
	Elapsed          float64 // seconds of battle
}

// StatusText returns the report screen text for the outcome.
func (r Result) StatusText() string {
	switch r.Outcome {
	case Victory:
		return fmt.Sprintf("You won!\n\nBaaaa bye angry war machines!\n\n\nYou gain %d new sheep!\n\n\nPress SPACE to continue.", r.RewardSheep)
	case GameOver:
		return "Game over! :(\n\n\nPress SPACE to start a new game!"
	case Draw:
		return "Time ran out!\n\nYou can face the war machines again\nuntil all of your sheep are gone!\n\n\nPress SPACE to continue."
	default:
		return "Something unexpected happened. You should still be playing the game!"
	}
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("outcome", r.Outcome.String()),
		slog.Int("level", r.Level),
		slog.Int("war_machines_slain", r.WarMachinesSlain),
		slog.Int("sheep_slain", r.SheepSlain),
		slog.Int("reward_sheep", r.RewardSheep),
		slog.Float64("elapsed", r.Elapsed),
	)
}

// HerdingSetup is handed to the herding phase when the report is confirmed.
// Each field is delivered exactly once.
type HerdingSetup struct {
	RewardSheep int  // fresh sheep to add to the pen
	NewGame     bool // reset the flock before adding anything
	Level       int  // level of the next battle
}
