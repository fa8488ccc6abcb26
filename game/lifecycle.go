package game

import (
	"github.com/mlange-42/ark/ecs"
	"go.opentelemetry.io/otel/attribute"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/components"
	"github.com/pthm-cable/warsheep/round"
	"github.com/pthm-cable/warsheep/systems"
	"github.com/pthm-cable/warsheep/telemetry"
)

// spawnInitialFlock creates the starting sheep at random pen positions.
func (g *Game) spawnInitialFlock() {
	for i := 0; i < g.cfg.Sheep.InitialCount; i++ {
		g.spawnRandomSheep()
	}
}

// spawnRandomSheep creates a base level sheep with a random color at a random pen position.
func (g *Game) spawnRandomSheep() ecs.Entity {
	sc := g.cfg.Sheep
	colors := sc.DarkColor
	if g.rng.Float64() < sc.WhiteChance {
		colors = sc.WhiteColor
	}
	color := colors[0] + g.rng.Float64()*(colors[1]-colors[0])
	return g.spawnSheep(g.randomPoint(g.pen), components.NewGenotype(color))
}

// spawnSheep creates a sheep with stats derived from its genotype.
// It satisfies systems.SheepCreator.
func (g *Game) spawnSheep(at r2.Vec, gt components.Genotype) ecs.Entity {
	stats := systems.MustDerive(g.sheepBase, gt.Levels)

	g.nextSheepID++
	pos := components.Position{X: at.X, Y: at.Y}
	sheep := components.Sheep{ID: g.nextSheepID, Genotype: gt}
	wander := g.wander.Start()
	bounds := g.pen
	if g.phase == PhaseBattle {
		bounds = g.battlefield
	}

	return g.sheepMapper.NewEntity(&pos, &stats.Health, &stats.Speed, &stats.Attack, &sheep, &wander, &bounds)
}

// spawnWarMachines creates the war machines for a round plan.
func (g *Game) spawnWarMachines(plan round.Plan) {
	stats := systems.MustDerive(g.machineBase, components.Levels{Base: plan.HostileLevelSum})
	clips := systems.ClipsFromConfig(g.cfg.Animation)

	for i := 0; i < plan.Hostiles; i++ {
		g.nextMachineID++
		pos := components.Position{}
		pos.Set(g.randomPoint(g.battlefield))
		health, speed, attack := stats.Health, stats.Speed, stats.Attack
		machine := components.WarMachine{ID: g.nextMachineID, Level: plan.HostileLevelSum}
		behavior := components.Behavior{State: components.StateIdling}
		anim := components.Animation{}
		anim.Play(clips.Idling)
		bounds := g.battlefield

		g.machineMapper.NewEntity(&pos, &health, &speed, &attack, &machine, &behavior, &anim, &bounds)
	}
}

// randomPoint returns a uniform point inside b.
func (g *Game) randomPoint(b components.Bounds) r2.Vec {
	return r2.Vec{
		X: b.MinX + g.rng.Float64()*(b.MaxX-b.MinX),
		Y: b.MinY + g.rng.Float64()*(b.MaxY-b.MinY),
	}
}

// beginBattle moves the flock onto the battlefield and spawns the opposition.
func (g *Game) beginBattle() {
	g.endDrag()

	plan := g.rounds.Begin()
	g.roundNo++
	g.phase = PhaseBattle

	// The flock enters at full health and switches to battlefield bounds
	flock, levelSum := 0, 0
	query := g.sheepFilter.Query()
	for query.Next() {
		e := query.Entity()
		_, health, sheep := query.Get()
		health.Current = health.Max
		*g.boundsMap.Get(e) = g.battlefield
		flock++
		levelSum += sheep.Genotype.Levels.Sum()
	}

	g.spawnWarMachines(plan)
	g.bounds.Update()

	g.collector.BeginRound(telemetry.RoundInfo{
		Round:           g.roundNo,
		Flock:           flock,
		FlockLevelSum:   levelSum,
		Hostiles:        plan.Hostiles,
		HostileLevelSum: plan.HostileLevelSum,
	})
	g.perf.Reset()

	_, span := g.tracer.Start(g.ctx, "round.start")
	span.SetAttributes(
		attribute.Int("round", g.roundNo),
		attribute.Int("level", plan.Level),
		attribute.Int("flock", flock),
		attribute.Int("hostiles", plan.Hostiles),
	)
	span.End()

	g.logRoundStart(plan, flock, levelSum)
	g.cue(CueBattleStart)
}

// endBattle closes a decided round: every war machine is despawned, including dying ones,
// before the report phase starts.
func (g *Game) endBattle() {
	res, ok := g.rounds.Result()
	if !ok {
		panic("game: ending a battle without a decided round")
	}

	g.removals = g.removals[:0]
	mq := g.machineFilter.Query()
	for mq.Next() {
		g.removals = append(g.removals, mq.Entity())
	}
	for _, e := range g.removals {
		g.world.RemoveEntity(e)
	}

	g.lastResult, g.hasResult = res, true
	g.phase = PhaseReport

	g.flushRoundTelemetry(res)

	_, span := g.tracer.Start(g.ctx, "round.end")
	span.SetAttributes(
		attribute.Int("round", g.roundNo),
		attribute.String("outcome", res.Outcome.String()),
		attribute.Int("war_machines_slain", res.WarMachinesSlain),
		attribute.Int("sheep_slain", res.SheepSlain),
	)
	span.End()

	g.logRoundEnd(res)
	g.cue(CueBattleEnd)
}

// confirmReport applies the herding setup event and returns to the pen.
func (g *Game) confirmReport() {
	setup, err := g.rounds.Confirm()
	if err != nil {
		panic("game: " + err.Error())
	}

	if setup.NewGame {
		g.despawnFlock()
		g.spawnInitialFlock()
	}

	g.phase = PhaseHerding
	query := g.sheepFilter.Query()
	for query.Next() {
		*g.boundsMap.Get(query.Entity()) = g.pen
	}

	for i := 0; i < setup.RewardSheep; i++ {
		g.spawnRandomSheep()
	}
	g.bounds.Update()

	g.logHerding(setup)
}

// despawnFlock removes every sheep.
func (g *Game) despawnFlock() {
	g.endDrag()
	g.removals = g.removals[:0]
	query := g.sheepFilter.Query()
	for query.Next() {
		g.removals = append(g.removals, query.Entity())
	}
	for _, e := range g.removals {
		g.world.RemoveEntity(e)
	}
}
