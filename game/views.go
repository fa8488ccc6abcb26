package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/warsheep/components"
)

// Kind tells sheep and war machines apart in views.
type Kind uint8

const (
	KindSheep Kind = iota
	KindWarMachine
)

// CreatureView is a read-only snapshot of a creature for rendering.
type CreatureView struct {
	Entity         ecs.Entity
	Kind           Kind
	X, Y           float64
	Color          float64 // sheep tint, 0 for war machines
	Levels         int     // level sum
	State          components.BehaviorState
	Clip           string
	Frame          int
	FlipX          bool
	HealthFraction float64
	Dragged        bool
}

// Creatures appends a view of every creature to dst and returns it.
// Sheep come first, then war machines.
func (g *Game) Creatures(dst []CreatureView) []CreatureView {
	sq := g.sheepFilter.Query()
	for sq.Next() {
		e := sq.Entity()
		pos, health, sheep := sq.Get()
		dst = append(dst, CreatureView{
			Entity:         e,
			Kind:           KindSheep,
			X:              pos.X,
			Y:              pos.Y,
			Color:          sheep.Genotype.Color,
			Levels:         sheep.Genotype.Levels.Sum(),
			HealthFraction: health.Fraction(),
			Dragged:        g.dragging && e == g.dragged,
		})
	}

	mq := g.machineFilter.Query()
	for mq.Next() {
		pos, health, machine, behavior, anim := mq.Get()
		dst = append(dst, CreatureView{
			Entity:         mq.Entity(),
			Kind:           KindWarMachine,
			X:              pos.X,
			Y:              pos.Y,
			Levels:         machine.Level,
			State:          behavior.State,
			Clip:           anim.Clip.Name,
			Frame:          anim.Frame,
			FlipX:          anim.FlipX,
			HealthFraction: health.Fraction(),
		})
	}
	return dst
}

// Counts returns the number of sheep and war machines in the world, dying ones included.
func (g *Game) Counts() (sheep, warMachines int) {
	sq := g.sheepFilter.Query()
	for sq.Next() {
		sheep++
	}
	mq := g.machineFilter.Query()
	for mq.Next() {
		warMachines++
	}
	return sheep, warMachines
}
