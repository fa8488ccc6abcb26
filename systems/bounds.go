package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/warsheep/components"
	"github.com/pthm-cable/warsheep/config"
)

// BoundsFromConfig converts a bounds config section into a component.
func BoundsFromConfig(c config.BoundsConfig) components.Bounds {
	return components.Bounds{MinX: c.MinX, MaxX: c.MaxX, MinY: c.MinY, MaxY: c.MaxY}
}

// BoundsSystem keeps entities inside their bounds.
type BoundsSystem struct {
	filter ecs.Filter2[components.Position, components.Bounds]
}

// NewBoundsSystem creates a new bounds system.
func NewBoundsSystem(w *ecs.World) *BoundsSystem {
	return &BoundsSystem{
		filter: *ecs.NewFilter2[components.Position, components.Bounds](w),
	}
}

// Update clamps every bounded position.
func (s *BoundsSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, bounds := query.Get()
		bounds.Clamp(pos)
	}
}
