package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/components"
)

// Strike is a single application of damage.
type Strike struct {
	Attacker ecs.Entity
	Target   ecs.Entity
	Damage   float64
	Hostile  bool // attacker is a war machine
	Kill     bool // this strike took the target to zero health
}

// BehaviorReport is what one hostile pass produced.
type BehaviorReport struct {
	Strikes []Strike
	Swings  int          // attack clips started, used for sound cues
	Expired []ecs.Entity // war machines whose death clip finished
}

// BehaviorSystem runs the war machine state machine.
type BehaviorSystem struct {
	clips  Clips
	report BehaviorReport
}

// NewBehaviorSystem creates a new behavior system.
func NewBehaviorSystem(clips Clips) *BehaviorSystem {
	return &BehaviorSystem{clips: clips}
}

// Update steps every war machine once against the friendly side of the roster.
// The returned report is reused by the next call.
func (s *BehaviorSystem) Update(r *Roster, dt float64) *BehaviorReport {
	s.report.Strikes = s.report.Strikes[:0]
	s.report.Expired = s.report.Expired[:0]
	s.report.Swings = 0

	for i := range r.Hostile {
		s.step(&r.Hostile[i], r.Friendly, dt)
	}
	return &s.report
}

// step is the single transition function for one war machine.
func (s *BehaviorSystem) step(self *Combatant, friendly []Combatant, dt float64) {
	b := self.Behavior

	if self.Health.Depleted() && b.State != components.StateDying {
		s.enterDying(self)
	}

	switch b.State {
	case components.StateIdling:
		if _, _, ok := nearest(self.Pos.Vec(), friendly, self.Attack.SpottingRange); ok {
			s.enter(self, components.StateWalking)
		}

	case components.StateWalking:
		_, d, ok := nearest(self.Pos.Vec(), friendly, self.Attack.SpottingRange)
		if !ok {
			s.enter(self, components.StateIdling)
			return
		}
		dist := r2.Norm(d)
		if dist <= self.Attack.Range {
			s.enter(self, components.StateAttacking)
			return
		}
		if dist >= self.Attack.Range*0.5 {
			step := r2.Scale(self.Speed*dt, unitOrZero(d))
			self.Pos.Set(r2.Add(self.Pos.Vec(), step))
		}
		face(self, d)

	case components.StateAttacking:
		if b.HasStarted {
			if self.Anim.HasFinished() {
				s.enter(self, components.StateIdling)
			}
			return
		}
		b.HasStarted = true
		s.report.Swings++

		target, d, ok := nearest(self.Pos.Vec(), friendly, self.Attack.Range)
		if !ok {
			s.enter(self, components.StateIdling)
			return
		}
		s.report.Strikes = append(s.report.Strikes, hit(self, target, true))
		face(self, d)

	case components.StateDying:
		if self.Anim.HasFinished() {
			s.report.Expired = append(s.report.Expired, self.Entity)
		}
	}
}

// enter switches state and starts the state's clip.
func (s *BehaviorSystem) enter(self *Combatant, state components.BehaviorState) {
	self.Behavior.State = state
	self.Behavior.HasStarted = false
	self.Anim.Play(s.clips.For(state))
}

// enterDying moves a war machine into Dying once.
// Returns false if it was already dying.
func (s *BehaviorSystem) enterDying(self *Combatant) bool {
	if self.Behavior.State == components.StateDying {
		return false
	}
	s.enter(self, components.StateDying)
	return true
}

// face turns the sprite towards d.
func face(self *Combatant, d r2.Vec) {
	if d.X == 0 || self.Anim == nil {
		return
	}
	self.Anim.FlipX = d.X < 0
}

// hit applies the attacker's damage to the target.
func hit(attacker, target *Combatant, hostile bool) Strike {
	wasAlive := !target.Health.Depleted()
	target.Health.Current -= attacker.Attack.Damage
	return Strike{
		Attacker: attacker.Entity,
		Target:   target.Entity,
		Damage:   attacker.Attack.Damage,
		Hostile:  hostile,
		Kill:     wasAlive && target.Health.Depleted(),
	}
}
