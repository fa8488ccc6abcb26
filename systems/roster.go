package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/warsheep/components"
)

// Combatant is a view of one creature's combat components for a single tick.
// The pointers alias ECS storage and are only valid until the next structural change.
type Combatant struct {
	Entity   ecs.Entity
	Pos      *components.Position
	Health   *components.Health
	Attack   *components.Attack
	Speed    float64
	Behavior *components.Behavior  // nil for sheep
	Anim     *components.Animation // nil for sheep
}

// Targetable reports whether the combatant may be selected as a target.
func (c *Combatant) Targetable() bool {
	if c.Health.Depleted() {
		return false
	}
	return c.Behavior == nil || c.Behavior.State != components.StateDying
}

// Roster is the per-tick split of the battlefield into friendly and hostile units.
type Roster struct {
	Friendly []Combatant
	Hostile  []Combatant
}

// Live returns the number of targetable units on each side.
// Dying war machines and fallen sheep are not counted.
func (r *Roster) Live() (friendly, hostile int) {
	for i := range r.Friendly {
		if r.Friendly[i].Targetable() {
			friendly++
		}
	}
	for i := range r.Hostile {
		if r.Hostile[i].Targetable() {
			hostile++
		}
	}
	return friendly, hostile
}

// RosterBuilder collects the roster from the world.
type RosterBuilder struct {
	sheep ecs.Filter5[
		components.Position,
		components.Health,
		components.Speed,
		components.Attack,
		components.Sheep,
	]
	machines ecs.Filter7[
		components.Position,
		components.Health,
		components.Speed,
		components.Attack,
		components.WarMachine,
		components.Behavior,
		components.Animation,
	]
	roster Roster
}

// NewRosterBuilder creates a roster builder for the world.
func NewRosterBuilder(w *ecs.World) *RosterBuilder {
	return &RosterBuilder{
		sheep: *ecs.NewFilter5[
			components.Position,
			components.Health,
			components.Speed,
			components.Attack,
			components.Sheep,
		](w),
		machines: *ecs.NewFilter7[
			components.Position,
			components.Health,
			components.Speed,
			components.Attack,
			components.WarMachine,
			components.Behavior,
			components.Animation,
		](w),
	}
}

// Build fills the roster from the current world state.
// The returned roster reuses the builder's slices and is overwritten by the next Build.
func (b *RosterBuilder) Build() *Roster {
	b.roster.Friendly = b.roster.Friendly[:0]
	b.roster.Hostile = b.roster.Hostile[:0]

	sq := b.sheep.Query()
	for sq.Next() {
		pos, health, speed, attack, _ := sq.Get()
		b.roster.Friendly = append(b.roster.Friendly, Combatant{
			Entity: sq.Entity(),
			Pos:    pos,
			Health: health,
			Attack: attack,
			Speed:  speed.Value,
		})
	}

	mq := b.machines.Query()
	for mq.Next() {
		pos, health, speed, attack, _, behavior, anim := mq.Get()
		b.roster.Hostile = append(b.roster.Hostile, Combatant{
			Entity:   mq.Entity(),
			Pos:      pos,
			Health:   health,
			Attack:   attack,
			Speed:    speed.Value,
			Behavior: behavior,
			Anim:     anim,
		})
	}

	return &b.roster
}
