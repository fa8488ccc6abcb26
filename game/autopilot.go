package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/config"
)

// Autopilot plays the game without a player: it merges a few random pairs in the pen,
// starts the battle and confirms the report after fixed delays.
type Autopilot struct {
	cfg config.AutopilotConfig
	rng *rand.Rand

	phase     Phase
	elapsed   float64 // seconds in the current phase
	sinceDrop float64
	breeds    int

	holding bool
	mate    ecs.Entity
	views   []CreatureView
}

// NewAutopilot creates an autopilot with its own random source.
func NewAutopilot(cfg config.AutopilotConfig, seed int64) *Autopilot {
	return &Autopilot{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Next returns the commands for the coming tick of g.
func (a *Autopilot) Next(g *Game, dt float64) Commands {
	if g.Phase() != a.phase {
		a.phase = g.Phase()
		a.elapsed, a.sinceDrop, a.breeds = 0, 0, 0
		a.holding = false
	}
	a.elapsed += dt
	a.sinceDrop += dt

	switch a.phase {
	case PhaseHerding:
		return a.herd(g)
	case PhaseReport:
		if a.elapsed >= a.cfg.ReportSeconds {
			return Commands{Confirm: true}
		}
	}
	return Commands{}
}

func (a *Autopilot) herd(g *Game) Commands {
	a.views = a.sheep(g)

	if a.holding {
		a.holding = false
		a.sinceDrop = 0
		for _, v := range a.views {
			if v.Entity == a.mate {
				a.breeds++
				p := r2.Vec{X: v.X, Y: v.Y}
				return Commands{Pointer: p, HasPointer: true, Release: true}
			}
		}
		// Mate is gone; drop in place
		return Commands{Release: true}
	}

	if a.elapsed >= a.cfg.HerdingSeconds {
		return Commands{StartBattle: true}
	}

	if a.breeds < a.cfg.BreedsPerRound && a.sinceDrop >= a.cfg.BreedInterval && len(a.views) >= 2 {
		i := a.rng.Intn(len(a.views))
		j := a.rng.Intn(len(a.views) - 1)
		if j >= i {
			j++
		}
		picked := a.views[i]
		a.mate = a.views[j].Entity
		a.holding = true
		p := r2.Vec{X: picked.X, Y: picked.Y}
		return Commands{Pointer: p, HasPointer: true, Grab: true}
	}
	return Commands{}
}

// sheep returns views of the sheep only.
func (a *Autopilot) sheep(g *Game) []CreatureView {
	views := g.Creatures(a.views[:0])
	n := 0
	for _, v := range views {
		if v.Kind == KindSheep {
			views[n] = v
			n++
		}
	}
	return views[:n]
}
