package systems

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/components"
	"github.com/pthm-cable/warsheep/config"
)

// LevelRule selects how a child's levels are computed from its parents.
type LevelRule uint8

const (
	// LevelRuleSum adds the parents' counters component-wise.
	LevelRuleSum LevelRule = iota
	// LevelRuleInherit copies one parent's counters and bumps one counter by one.
	LevelRuleInherit
)

// String returns the config name of the rule.
func (r LevelRule) String() string {
	switch r {
	case LevelRuleSum:
		return "sum"
	case LevelRuleInherit:
		return "inherit"
	default:
		return "unknown"
	}
}

// ParseLevelRule parses a config name into a LevelRule.
func ParseLevelRule(s string) (LevelRule, error) {
	switch s {
	case "sum", "":
		return LevelRuleSum, nil
	case "inherit":
		return LevelRuleInherit, nil
	}
	return 0, fmt.Errorf("unknown level rule %q", s)
}

// BreedParams controls genotype combination.
type BreedParams struct {
	Rule        LevelRule
	ColorJitter float64 // color offset is drawn from [-ColorJitter, ColorJitter]
	MinColor    float64
}

// BreedParamsFromConfig converts the breeding config section.
func BreedParamsFromConfig(c config.BreedingConfig) (BreedParams, error) {
	rule, err := ParseLevelRule(c.LevelRule)
	if err != nil {
		return BreedParams{}, fmt.Errorf("breeding config: %w", err)
	}
	return BreedParams{Rule: rule, ColorJitter: c.ColorJitter, MinColor: c.MinColor}, nil
}

// Combine produces the child genotype of two parents.
// Color is the jittered mean of the parents clamped to [MinColor, 1].
func Combine(a, b components.Genotype, p BreedParams, rng *rand.Rand) components.Genotype {
	color := (a.Color+b.Color)/2 + randRange(rng, -p.ColorJitter, p.ColorJitter)

	var levels components.Levels
	switch p.Rule {
	case LevelRuleInherit:
		levels = a.Levels
		if rng.Intn(2) == 1 {
			levels = b.Levels
		}
		switch rng.Intn(4) {
		case 0:
			levels.Base++
		case 1:
			levels.Spear++
		case 2:
			levels.Tank++
		default:
			levels.Medic++
		}
	default:
		levels = a.Levels.Add(b.Levels)
	}

	return components.Genotype{
		Color:  clampFloat(color, p.MinColor, 1),
		Levels: levels,
	}
}

// SheepCreator is called to spawn a sheep with a genotype at a position.
type SheepCreator func(pos r2.Vec, g components.Genotype) ecs.Entity

// Breed describes a completed merge.
type Breed struct {
	Child    ecs.Entity
	Parents  [2]components.Sheep
	Genotype components.Genotype
	Pos      r2.Vec
}

// BreedingSystem merges a dropped sheep with the sheep it lands on.
type BreedingSystem struct {
	world    *ecs.World
	filter   ecs.Filter2[components.Position, components.Sheep]
	posMap   *ecs.Map[components.Position]
	sheepMap *ecs.Map[components.Sheep]
	params   BreedParams
	reach    float64
	rng      *rand.Rand
}

// NewBreedingSystem creates a new breeding system.
// reach is the largest centre distance at which two sheep collide.
func NewBreedingSystem(w *ecs.World, params BreedParams, reach float64, rng *rand.Rand) *BreedingSystem {
	return &BreedingSystem{
		world:    w,
		filter:   *ecs.NewFilter2[components.Position, components.Sheep](w),
		posMap:   ecs.NewMap[components.Position](w),
		sheepMap: ecs.NewMap[components.Sheep](w),
		params:   params,
		reach:    reach,
		rng:      rng,
	}
}

// HandleDrop runs when a drag ends on the dropped sheep. If another sheep is within reach,
// both are removed and a child is created at the other sheep's position.
func (s *BreedingSystem) HandleDrop(dropped ecs.Entity, create SheepCreator) (Breed, bool) {
	if !s.world.Alive(dropped) || !s.sheepMap.Has(dropped) {
		return Breed{}, false
	}
	origin := s.posMap.Get(dropped).Vec()

	var (
		mate    ecs.Entity
		matePos r2.Vec
		found   bool
	)
	query := s.filter.Query()
	for query.Next() {
		e := query.Entity()
		if e == dropped {
			continue
		}
		pos, _ := query.Get()
		if r2.Norm(r2.Sub(pos.Vec(), origin)) <= s.reach {
			mate, matePos, found = e, pos.Vec(), true
			query.Close()
			break
		}
	}
	if !found {
		return Breed{}, false
	}

	a := *s.sheepMap.Get(dropped)
	b := *s.sheepMap.Get(mate)
	child := Combine(a.Genotype, b.Genotype, s.params, s.rng)

	s.world.RemoveEntity(dropped)
	s.world.RemoveEntity(mate)

	return Breed{
		Child:    create(matePos, child),
		Parents:  [2]components.Sheep{a, b},
		Genotype: child,
		Pos:      matePos,
	}, true
}
