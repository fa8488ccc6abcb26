package round

import "fmt"

// Plan tells the host what to spawn for a round.
type Plan struct {
	Level           int
	Hostiles        int
	HostileLevelSum int
	Duration        float64
}

// State is the controller's view of the current round.
type State struct {
	Level   int
	Timer   Timer
	Outcome Outcome
	Reward  int // sheep granted by a victory, pending until Confirm
}

// Controller owns level progression and decides the outcome of each round.
//
// A round goes Begin -> Tick/Evaluate until decided -> Result -> Confirm.
// The outcome is computed once; later Evaluate calls return the stored value.
type Controller struct {
	scaling    Scaling
	duration   float64
	startLevel int

	state   State
	running bool
	result  Result
	pending *HerdingSetup
}

// NewController creates a controller starting at startLevel.
func NewController(scaling Scaling, roundSeconds float64, startLevel int) *Controller {
	if startLevel < 1 {
		startLevel = 1
	}
	return &Controller{
		scaling:    scaling,
		duration:   roundSeconds,
		startLevel: startLevel,
		state:      State{Level: startLevel},
	}
}

// Level returns the level of the next (or current) battle.
func (c *Controller) Level() int {
	return c.state.Level
}

// Begin starts a round at the current level and returns what to spawn.
func (c *Controller) Begin() Plan {
	level := c.state.Level
	c.state = State{Level: level, Timer: NewTimer(c.duration)}
	c.result = Result{Level: level}
	c.running = true
	c.pending = nil
	return Plan{
		Level:           level,
		Hostiles:        c.scaling.HostileCount(level),
		HostileLevelSum: c.scaling.HostileLevelSum(level),
		Duration:        c.duration,
	}
}

// Running reports whether a round has begun and is not yet decided.
func (c *Controller) Running() bool {
	return c.running && !c.state.Outcome.Decided()
}

// Tick advances the round timer. It is a no-op once the round is decided.
func (c *Controller) Tick(dt float64) {
	if !c.Running() {
		return
	}
	c.state.Timer.Tick(dt)
	c.result.Elapsed = c.state.Timer.Elapsed
}

// RecordKills adds to the slain counters of the current round.
func (c *Controller) RecordKills(warMachines, sheep int) {
	if !c.Running() {
		return
	}
	c.result.WarMachinesSlain += warMachines
	c.result.SheepSlain += sheep
}

// Evaluate decides the outcome from the live unit counts.
// Victory takes precedence when both sides are empty.
func (c *Controller) Evaluate(friendly, hostile int) Outcome {
	if !c.running {
		panic("round: Evaluate called without an active round")
	}
	if c.state.Outcome.Decided() {
		return c.state.Outcome
	}

	switch {
	case hostile == 0:
		c.decide(Victory)
	case friendly == 0:
		c.decide(GameOver)
	case c.state.Timer.Expired():
		c.decide(Draw)
	}
	return c.state.Outcome
}

func (c *Controller) decide(o Outcome) {
	c.state.Outcome = o
	c.result.Outcome = o

	setup := HerdingSetup{}
	switch o {
	case Victory:
		c.state.Reward = c.scaling.Reward(c.state.Level)
		c.result.RewardSheep = c.state.Reward
		setup.RewardSheep = c.state.Reward
		c.state.Level++
	case GameOver:
		setup.NewGame = true
	}
	c.pending = &setup
}

// State returns a copy of the current round state.
func (c *Controller) State() State {
	return c.state
}

// Result returns the round result once decided.
func (c *Controller) Result() (Result, bool) {
	if !c.running || !c.state.Outcome.Decided() {
		return Result{}, false
	}
	return c.result, true
}

// PendingReward returns the sheep a confirmed victory will grant.
func (c *Controller) PendingReward() int {
	if c.pending == nil {
		return 0
	}
	return c.pending.RewardSheep
}

// Confirm closes a decided round and returns the herding setup event.
// A game over resets the level. Pending effects are cleared, so a second call returns
// an empty setup.
func (c *Controller) Confirm() (HerdingSetup, error) {
	if c.running && !c.state.Outcome.Decided() {
		return HerdingSetup{}, fmt.Errorf("round: confirm at level %d before the round was decided", c.state.Level)
	}
	c.running = false

	if c.pending == nil {
		return HerdingSetup{Level: c.state.Level}, nil
	}
	setup := *c.pending
	c.pending = nil

	if setup.NewGame {
		c.state.Level = c.startLevel
	}
	c.state.Reward = 0
	setup.Level = c.state.Level
	return setup, nil
}
