package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/pthm-cable/warsheep/components"
	"github.com/pthm-cable/warsheep/config"
)

// ErrInvalidLevels is returned when a level set sums to less than one.
// The stat formulas take log2 of the sum, so this is never allowed to reach them.
var ErrInvalidLevels = errors.New("level sum must be at least 1")

// StatBase holds the per-kind constants the stat formulas scale.
type StatBase struct {
	Health   float64
	Speed    float64
	Damage   float64
	Range    float64
	Spotting float64
	MinRange float64 // floor for Range; the raw formula is negative below a level sum of 2
}

// StatBaseFromConfig converts a config section into a StatBase.
func StatBaseFromConfig(c config.StatsConfig) StatBase {
	return StatBase{
		Health:   c.Health,
		Speed:    c.Speed,
		Damage:   c.Damage,
		Range:    c.Range,
		Spotting: c.Spotting,
		MinRange: c.MinRange,
	}
}

// CombatStats are the components derived from a level set.
type CombatStats struct {
	Health components.Health
	Speed  components.Speed
	Attack components.Attack
}

// Derive computes combat stats for a level set.
//
//	health   = Health * n
//	speed    = Speed * log2(n) + 1
//	damage   = Damage * (n + 1) / 2
//	range    = max(MinRange, Range * (log2(n/2) + 0.2))
//	spotting = Spotting * (log2(n) + 1)
func Derive(base StatBase, levels components.Levels) (CombatStats, error) {
	n := levels.Sum()
	if n < 1 {
		return CombatStats{}, fmt.Errorf("deriving stats for %+v: %w", levels, ErrInvalidLevels)
	}
	return DeriveSum(base, n)
}

// DeriveSum computes combat stats directly from a level sum.
func DeriveSum(base StatBase, n int) (CombatStats, error) {
	if n < 1 {
		return CombatStats{}, fmt.Errorf("deriving stats for level sum %d: %w", n, ErrInvalidLevels)
	}
	sum := float64(n)
	lg := math.Log2(sum)

	health := base.Health * sum
	attackRange := base.Range * (math.Log2(sum/2) + 0.2)
	if attackRange < base.MinRange {
		attackRange = base.MinRange
	}

	return CombatStats{
		Health: components.Health{Current: health, Max: health},
		Speed:  components.Speed{Value: base.Speed*lg + 1},
		Attack: components.Attack{
			Damage:        base.Damage * (sum + 1) / 2,
			Range:         attackRange,
			SpottingRange: base.Spotting * (lg + 1),
		},
	}, nil
}

// MustDerive is like Derive but panics on error.
// Spawn paths use it because genotypes always start at a base level of 1.
func MustDerive(base StatBase, levels components.Levels) CombatStats {
	s, err := Derive(base, levels)
	if err != nil {
		panic(fmt.Sprintf("systems: %v", err))
	}
	return s
}
