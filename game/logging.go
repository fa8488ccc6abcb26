package game

import (
	"log/slog"

	"github.com/pthm-cable/warsheep/round"
	"github.com/pthm-cable/warsheep/systems"
)

// logRoundStart logs the forces of a round that just began.
func (g *Game) logRoundStart(plan round.Plan, flock, levelSum int) {
	slog.Info("round started",
		"round", g.roundNo,
		"level", plan.Level,
		"flock", flock,
		"flock_level_sum", levelSum,
		"hostiles", plan.Hostiles,
		"hostile_level_sum", plan.HostileLevelSum,
		"seconds", plan.Duration,
	)
}

// logRoundEnd logs the decided outcome.
func (g *Game) logRoundEnd(res round.Result) {
	slog.Info("round ended",
		"round", g.roundNo,
		"tick", g.tick,
		"result", res,
	)
}

// logHerding logs the setup applied when returning to the pen.
func (g *Game) logHerding(setup round.HerdingSetup) {
	if setup.NewGame {
		slog.Info("new game", "level", setup.Level, "flock", g.cfg.Sheep.InitialCount)
	}
	slog.Info("herding",
		"level", setup.Level,
		"reward_sheep", setup.RewardSheep,
	)
}

func (g *Game) logDeaths(d systems.Deaths) {
	if len(d.Sheep) == 0 && len(d.NewlyDying) == 0 {
		return
	}
	slog.Debug("casualties",
		"tick", g.tick,
		"sheep", len(d.Sheep),
		"war_machines", len(d.NewlyDying),
	)
}
