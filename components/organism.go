package components

// Levels are the accumulated counters a sheep's stats are derived from.
type Levels struct {
	Base  int
	Spear int
	Tank  int
	Medic int
}

// Sum returns the total of all counters.
func (l Levels) Sum() int {
	return l.Base + l.Spear + l.Tank + l.Medic
}

// Add returns the component-wise sum of two level sets.
func (l Levels) Add(o Levels) Levels {
	return Levels{
		Base:  l.Base + o.Base,
		Spear: l.Spear + o.Spear,
		Tank:  l.Tank + o.Tank,
		Medic: l.Medic + o.Medic,
	}
}

// Genotype is the breedable trait set of a sheep.
type Genotype struct {
	Color  float64 // 0.1 (black) .. 1.0 (white), tint and breeding trait
	Levels Levels
}

// NewGenotype returns a base level sheep of the given color.
func NewGenotype(color float64) Genotype {
	return Genotype{Color: color, Levels: Levels{Base: 1}}
}

// Sheep marks a friendly unit and carries its genotype.
type Sheep struct {
	ID       uint32
	Genotype Genotype
}

// WanderState is the phase of a sheep's idle wandering.
type WanderState uint8

const (
	WanderIdling WanderState = iota
	WanderWalking
)

// Wander drives a sheep's aimless movement in the pen and on the battlefield.
type Wander struct {
	State     WanderState
	Remaining float64 // seconds until the state flips
	Elapsed   float64 // seconds spent in the current state
	DirX      float64 // unit walking direction
	DirY      float64
}
