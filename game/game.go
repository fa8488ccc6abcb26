// Package game hosts the war sheep simulation: the entity world, the phase loop and
// the glue between systems, the round controller and telemetry.
package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"go.opentelemetry.io/otel/trace"

	"github.com/pthm-cable/warsheep/components"
	"github.com/pthm-cable/warsheep/config"
	"github.com/pthm-cable/warsheep/round"
	"github.com/pthm-cable/warsheep/systems"
	"github.com/pthm-cable/warsheep/telemetry"
)

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	ctx   context.Context

	// Entity mappers, one per creature kind
	sheepMapper *ecs.Map7[
		components.Position,
		components.Health,
		components.Speed,
		components.Attack,
		components.Sheep,
		components.Wander,
		components.Bounds,
	]
	machineMapper *ecs.Map8[
		components.Position,
		components.Health,
		components.Speed,
		components.Attack,
		components.WarMachine,
		components.Behavior,
		components.Animation,
		components.Bounds,
	]

	// Individual component mappers for lookups
	posMap    *ecs.Map[components.Position]
	healthMap *ecs.Map[components.Health]
	sheepMap  *ecs.Map[components.Sheep]
	boundsMap *ecs.Map[components.Bounds]
	dragMap   *ecs.Map[components.Drag]

	sheepFilter   *ecs.Filter3[components.Position, components.Health, components.Sheep]
	machineFilter *ecs.Filter5[
		components.Position,
		components.Health,
		components.WarMachine,
		components.Behavior,
		components.Animation,
	]

	// Systems
	roster    *systems.RosterBuilder
	behavior  *systems.BehaviorSystem
	attack    *systems.AttackSystem
	animation *systems.AnimationSystem
	wander    *systems.WanderSystem
	bounds    *systems.BoundsSystem
	breeding  *systems.BreedingSystem

	sheepBase   systems.StatBase
	machineBase systems.StatBase
	pen         components.Bounds
	battlefield components.Bounds

	// Rounds
	rounds     *round.Controller
	phase      Phase
	lastResult round.Result
	hasResult  bool
	roundNo    int

	// Drag state
	dragged  ecs.Entity
	dragging bool

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	tracer    trace.Tracer

	// State
	tick          int64
	nextSheepID   uint32
	nextMachineID uint32
	cues          []Cue
	removals      []ecs.Entity
}

// New creates a game with a fresh flock in the pen.
func New(cfg *config.Config, opts Options) (*Game, error) {
	breed, err := systems.BreedParamsFromConfig(cfg.Breeding)
	if err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	startLevel := cfg.Round.StartLevel
	if opts.StartLevel > 0 {
		startLevel = opts.StartLevel
	}

	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:   cfg,
		world: world,
		rng:   rng,
		ctx:   ctx,
		sheepMapper: ecs.NewMap7[
			components.Position,
			components.Health,
			components.Speed,
			components.Attack,
			components.Sheep,
			components.Wander,
			components.Bounds,
		](world),
		machineMapper: ecs.NewMap8[
			components.Position,
			components.Health,
			components.Speed,
			components.Attack,
			components.WarMachine,
			components.Behavior,
			components.Animation,
			components.Bounds,
		](world),
		posMap:      ecs.NewMap[components.Position](world),
		healthMap:   ecs.NewMap[components.Health](world),
		sheepMap:    ecs.NewMap[components.Sheep](world),
		boundsMap:   ecs.NewMap[components.Bounds](world),
		dragMap:     ecs.NewMap[components.Drag](world),
		sheepFilter: ecs.NewFilter3[components.Position, components.Health, components.Sheep](world),
		machineFilter: ecs.NewFilter5[
			components.Position,
			components.Health,
			components.WarMachine,
			components.Behavior,
			components.Animation,
		](world),

		roster:    systems.NewRosterBuilder(world),
		behavior:  systems.NewBehaviorSystem(systems.ClipsFromConfig(cfg.Animation)),
		attack:    systems.NewAttackSystem(),
		animation: systems.NewAnimationSystem(world),
		wander:    systems.NewWanderSystem(world, systems.WanderParamsFromConfig(cfg.Sheep), rng),
		bounds:    systems.NewBoundsSystem(world),
		breeding:  systems.NewBreedingSystem(world, breed, cfg.Sheep.Scale, rng),

		sheepBase:   systems.StatBaseFromConfig(cfg.SheepStats),
		machineBase: systems.StatBaseFromConfig(cfg.WarMachineStats),
		pen:         systems.BoundsFromConfig(cfg.Pen),
		battlefield: systems.BoundsFromConfig(cfg.Battlefield),

		rounds: round.NewController(round.ScalingFromConfig(cfg), cfg.Round.Seconds, startLevel),
		phase:  PhaseHerding,

		collector: telemetry.NewCollector(),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:    output,
		tracer:    telemetry.Tracer("game"),
	}

	g.spawnInitialFlock()
	return g, nil
}

// Update advances the game by one tick of dt seconds, applying the host's commands.
func (g *Game) Update(dt float64, cmds Commands) {
	g.tick++

	switch g.phase {
	case PhaseHerding:
		g.herdingStep(dt, cmds)
	case PhaseBattle:
		g.battleStep(dt)
	case PhaseReport:
		if cmds.Confirm {
			g.confirmReport()
		}
	}
}

// Close flushes and closes run output.
func (g *Game) Close() error {
	return g.output.Close()
}

// Config returns the configuration the game was created with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Level returns the level of the next (or current) battle.
func (g *Game) Level() int {
	return g.rounds.Level()
}

// PendingReward returns the sheep the current report will grant once confirmed.
func (g *Game) PendingReward() int {
	if g.phase != PhaseReport {
		return 0
	}
	return g.rounds.PendingReward()
}

// Arena returns the rectangle creatures are kept inside in the current phase.
func (g *Game) Arena() components.Bounds {
	if g.phase == PhaseHerding {
		return g.pen
	}
	return g.battlefield
}

// Result returns the outcome of the most recent round.
func (g *Game) Result() (round.Result, bool) {
	return g.lastResult, g.hasResult
}

// RoundTimer returns the timer of the current round.
func (g *Game) RoundTimer() round.Timer {
	return g.rounds.State().Timer
}

// RoundsPlayed returns the number of battles fought.
func (g *Game) RoundsPlayed() int {
	return g.roundNo
}

// Tick returns the number of updates run so far.
func (g *Game) Tick() int64 {
	return g.tick
}

// Perf returns the tick timing collector.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perf
}

// DrainCues returns the cues raised since the last call.
func (g *Game) DrainCues() []Cue {
	cues := g.cues
	g.cues = nil
	return cues
}

func (g *Game) cue(c Cue) {
	g.cues = append(g.cues, c)
}
