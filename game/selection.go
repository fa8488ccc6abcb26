package game

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/systems"
)

// sheepAt returns the sheep nearest to p within half a sheep's scale.
func (g *Game) sheepAt(p r2.Vec) (ecs.Entity, bool) {
	var (
		entities   []ecs.Entity
		candidates []systems.Candidate
	)
	query := g.sheepFilter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		candidates = append(candidates, systems.Candidate{ID: len(entities), Pos: pos.Vec()})
		entities = append(entities, query.Entity())
	}

	c, ok := systems.SelectTarget(p, candidates, g.cfg.Sheep.Scale/2)
	if !ok {
		return ecs.Entity{}, false
	}
	return entities[c.ID], true
}
