package systems

import "gonum.org/v1/gonum/spatial/r2"

// AttackSystem runs friendly auto-attack.
// Every live sheep damages the nearest spotted war machine each tick it is within range.
type AttackSystem struct {
	strikes []Strike
}

// NewAttackSystem creates a new attack system.
func NewAttackSystem() *AttackSystem {
	return &AttackSystem{}
}

// Update applies one tick of friendly damage. The result is reused by the next call.
func (s *AttackSystem) Update(r *Roster) []Strike {
	s.strikes = s.strikes[:0]

	for i := range r.Friendly {
		sheep := &r.Friendly[i]
		if !sheep.Targetable() {
			continue
		}
		target, d, ok := nearest(sheep.Pos.Vec(), r.Hostile, sheep.Attack.SpottingRange)
		if !ok || r2.Norm(d) > sheep.Attack.Range {
			continue
		}
		s.strikes = append(s.strikes, hit(sheep, target, false))
	}
	return s.strikes
}
