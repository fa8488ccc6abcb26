package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// clampFloat clamps a value between min and max.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// unitOrZero returns the unit vector of v, or the zero vector when v has no length.
func unitOrZero(v r2.Vec) r2.Vec {
	if r2.Norm(v) == 0 {
		return r2.Vec{}
	}
	return r2.Unit(v)
}

// randRange returns a uniform value in [lo, hi].
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randomDirection returns a unit vector in a random direction, or zero in the
// rare case both components were drawn as zero.
func randomDirection(rng *rand.Rand) r2.Vec {
	return unitOrZero(r2.Vec{X: randRange(rng, -1, 1), Y: randRange(rng, -1, 1)})
}
