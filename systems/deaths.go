package systems

import "github.com/mlange-42/ark/ecs"

// Deaths is the outcome of the death pass.
type Deaths struct {
	Sheep      []ecs.Entity // fallen sheep, removed right away
	NewlyDying []ecs.Entity // war machines that started their death clip this tick
}

// CollectDeaths moves depleted war machines into Dying and collects fallen sheep.
// It makes no structural changes; the caller removes Deaths.Sheep after the pass.
func (s *BehaviorSystem) CollectDeaths(r *Roster) Deaths {
	var d Deaths
	for i := range r.Hostile {
		c := &r.Hostile[i]
		if c.Health.Depleted() && s.enterDying(c) {
			d.NewlyDying = append(d.NewlyDying, c.Entity)
		}
	}
	for i := range r.Friendly {
		if r.Friendly[i].Health.Depleted() {
			d.Sheep = append(d.Sheep, r.Friendly[i].Entity)
		}
	}
	return d
}
