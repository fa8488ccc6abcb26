package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"go.opentelemetry.io/otel/attribute"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/components"
)

// Commands are the host's inputs for one tick, in world coordinates.
type Commands struct {
	Pointer     r2.Vec
	HasPointer  bool
	Grab        bool // pointer pressed: pick up the sheep under it
	Release     bool // pointer released: drop the held sheep
	StartBattle bool
	Confirm     bool // leave the report screen
}

// handleDrag applies grab, drag and release in the pen.
// A release drops the sheep where it is and merges it with any sheep it lands on.
func (g *Game) handleDrag(cmds Commands) {
	if cmds.Grab && !g.dragging && cmds.HasPointer {
		if e, ok := g.sheepAt(cmds.Pointer); ok {
			g.dragMap.Add(e, &components.Drag{})
			g.dragged, g.dragging = e, true
		}
	}

	if !g.dragging {
		return
	}
	if !g.world.Alive(g.dragged) {
		g.dragging = false
		return
	}
	if cmds.HasPointer {
		g.posMap.Get(g.dragged).Set(cmds.Pointer)
		g.pen.Clamp(g.posMap.Get(g.dragged))
	}

	if cmds.Release {
		dropped := g.dragged
		g.endDrag()
		g.drop(dropped)
	}
}

// endDrag releases the held sheep without merging.
func (g *Game) endDrag() {
	if !g.dragging {
		return
	}
	if g.world.Alive(g.dragged) && g.dragMap.Has(g.dragged) {
		g.dragMap.Remove(g.dragged)
	}
	g.dragging = false
}

// drop runs breeding for a sheep that was just released.
func (g *Game) drop(dropped ecs.Entity) {
	_, span := g.tracer.Start(g.ctx, "breed")
	defer span.End()

	breed, ok := g.breeding.HandleDrop(dropped, g.spawnSheep)
	if !ok {
		return
	}
	span.SetAttributes(
		attribute.Int("child_level_sum", breed.Genotype.Levels.Sum()),
		attribute.Float64("child_color", breed.Genotype.Color),
	)

	g.collector.RecordBreed()
	g.cue(CueBreed)
	slog.Info("sheep merged",
		"parents", []uint32{breed.Parents[0].ID, breed.Parents[1].ID},
		"levels", breed.Genotype.Levels.Sum(),
		"color", breed.Genotype.Color,
	)
}

// Dragging reports whether a sheep is currently held.
func (g *Game) Dragging() bool {
	return g.dragging
}
