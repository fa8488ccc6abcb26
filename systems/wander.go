package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/components"
	"github.com/pthm-cable/warsheep/config"
)

// WanderParams controls sheep idle wandering.
type WanderParams struct {
	WalkSeconds float64
	IdleSeconds float64
	Deviance    float64 // +- fraction applied to both durations
	SpeedScale  float64
}

// WanderParamsFromConfig converts the sheep config section into WanderParams.
func WanderParamsFromConfig(c config.SheepConfig) WanderParams {
	return WanderParams{
		WalkSeconds: c.WanderSeconds,
		IdleSeconds: c.IdleSeconds,
		Deviance:    c.WanderDeviance,
		SpeedScale:  c.WanderSpeedScale,
	}
}

// WanderSystem alternates sheep between standing and walking in a random direction.
// Sheep being dragged are skipped.
type WanderSystem struct {
	filter *ecs.Filter3[components.Position, components.Speed, components.Wander]
	params WanderParams
	rng    *rand.Rand
}

// NewWanderSystem creates a new wander system.
func NewWanderSystem(w *ecs.World, params WanderParams, rng *rand.Rand) *WanderSystem {
	return &WanderSystem{
		filter: ecs.NewFilter3[components.Position, components.Speed, components.Wander](w).
			Without(ecs.C[components.Drag]()),
		params: params,
		rng:    rng,
	}
}

// Start returns a fresh wander state beginning in a random phase.
func (s *WanderSystem) Start() components.Wander {
	var wd components.Wander
	if s.rng.Intn(2) == 0 {
		wd.State = components.WanderWalking
	}
	s.flip(&wd)
	return wd
}

// Update moves walking sheep and flips expired wander timers.
func (s *WanderSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, speed, wd := query.Get()
		s.advance(pos, speed.Value, wd, dt)
	}
}

func (s *WanderSystem) advance(pos *components.Position, speed float64, wd *components.Wander, dt float64) {
	wd.Elapsed += dt
	wd.Remaining -= dt
	if wd.Remaining <= 0 {
		s.flip(wd)
	}
	if wd.State == components.WanderWalking {
		dir := r2.Vec{X: wd.DirX, Y: wd.DirY}
		pos.Set(r2.Add(pos.Vec(), r2.Scale(speed*s.params.SpeedScale*dt, dir)))
	}
}

// flip switches to the other phase with a jittered duration.
func (s *WanderSystem) flip(wd *components.Wander) {
	wd.Elapsed = 0
	if wd.State == components.WanderWalking {
		wd.State = components.WanderIdling
		wd.Remaining = s.jitter(s.params.IdleSeconds)
		return
	}
	wd.State = components.WanderWalking
	wd.Remaining = s.jitter(s.params.WalkSeconds)
	dir := randomDirection(s.rng)
	wd.DirX, wd.DirY = dir.X, dir.Y
}

func (s *WanderSystem) jitter(seconds float64) float64 {
	dev := s.params.Deviance
	return seconds * (1 + randRange(s.rng, -dev, dev))
}
