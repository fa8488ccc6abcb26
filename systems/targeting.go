package systems

import "gonum.org/v1/gonum/spatial/r2"

// Candidate is a potential target: an opaque ID and a position.
type Candidate struct {
	ID  int
	Pos r2.Vec
}

// SelectTarget returns the candidate nearest to origin whose distance is at most maxRange.
// Ties keep the first candidate encountered. ok is false when nothing is in range.
func SelectTarget(origin r2.Vec, candidates []Candidate, maxRange float64) (best Candidate, ok bool) {
	bestDist := 0.0
	for _, c := range candidates {
		d := r2.Norm(r2.Sub(c.Pos, origin))
		if d > maxRange {
			continue
		}
		if !ok || d < bestDist {
			best, bestDist, ok = c, d, true
		}
	}
	return best, ok
}

// nearest runs SelectTarget over combatants, skipping those that cannot be targeted.
// It returns the chosen combatant and the vector from origin to it.
func nearest(origin r2.Vec, pool []Combatant, maxRange float64) (*Combatant, r2.Vec, bool) {
	candidates := make([]Candidate, 0, len(pool))
	for i := range pool {
		if !pool[i].Targetable() {
			continue
		}
		candidates = append(candidates, Candidate{ID: i, Pos: pool[i].Pos.Vec()})
	}

	c, ok := SelectTarget(origin, candidates, maxRange)
	if !ok {
		return nil, r2.Vec{}, false
	}
	return &pool[c.ID], r2.Sub(c.Pos, origin), true
}
