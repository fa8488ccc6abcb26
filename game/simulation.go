package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/warsheep/round"
	"github.com/pthm-cable/warsheep/systems"
	"github.com/pthm-cable/warsheep/telemetry"
)

// herdingStep runs one tick in the pen.
func (g *Game) herdingStep(dt float64, cmds Commands) {
	g.handleDrag(cmds)
	g.wander.Update(dt)
	g.bounds.Update()

	if cmds.StartBattle {
		g.beginBattle()
	}
}

// battleStep runs one battle tick.
//
// Passes only mutate component values; removals happen after the roster is no
// longer used, and the outcome is evaluated from the counts taken before them.
func (g *Game) battleStep(dt float64) {
	p := g.perf
	p.StartTick()

	p.StartPhase(telemetry.PhaseTimer)
	g.rounds.Tick(dt)

	p.StartPhase(telemetry.PhaseAnimation)
	g.animation.Update(dt)

	p.StartPhase(telemetry.PhaseWander)
	g.wander.Update(dt)

	p.StartPhase(telemetry.PhaseRoster)
	r := g.roster.Build()

	p.StartPhase(telemetry.PhaseBehavior)
	report := g.behavior.Update(r, dt)
	g.recordStrikes(report.Strikes)
	g.collector.RecordSwings(report.Swings)
	for i := 0; i < report.Swings; i++ {
		g.cue(CueAttack)
	}

	p.StartPhase(telemetry.PhaseAttack)
	g.recordStrikes(g.attack.Update(r))

	p.StartPhase(telemetry.PhaseDeaths)
	deaths := g.behavior.CollectDeaths(r)
	friendly, hostile := r.Live()
	g.rounds.RecordKills(len(deaths.NewlyDying), len(deaths.Sheep))
	g.logDeaths(deaths)

	p.StartPhase(telemetry.PhaseBounds)
	g.bounds.Update()

	p.StartPhase(telemetry.PhaseCleanup)
	g.removeAll(deaths.Sheep)
	g.removeAll(report.Expired)

	p.StartPhase(telemetry.PhaseEvaluate)
	outcome := g.rounds.Evaluate(friendly, hostile)

	p.EndTick()
	g.collector.RecordTick()

	if outcome != round.StillPlaying {
		g.endBattle()
	}
}

func (g *Game) recordStrikes(strikes []systems.Strike) {
	for _, s := range strikes {
		g.collector.RecordStrike(s.Hostile, s.Damage, s.Kill)
	}
}

func (g *Game) removeAll(entities []ecs.Entity) {
	for _, e := range entities {
		if g.world.Alive(e) {
			g.world.RemoveEntity(e)
		}
	}
}
