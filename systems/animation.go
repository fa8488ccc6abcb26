package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/warsheep/components"
	"github.com/pthm-cable/warsheep/config"
)

// Clips holds the clip played in each behaviour state.
type Clips struct {
	Idling    components.ClipSpec
	Walking   components.ClipSpec
	Attacking components.ClipSpec
	Dying     components.ClipSpec
}

// ClipsFromConfig builds the clip set from the animation config section.
func ClipsFromConfig(c config.AnimationConfig) Clips {
	clip := func(name string, cc config.ClipConfig) components.ClipSpec {
		return components.ClipSpec{
			Name:      name,
			Frames:    cc.Frames,
			FrameTime: cc.FrameTime,
			Repeating: cc.Repeating,
		}
	}
	return Clips{
		Idling:    clip(components.ClipIdling, c.Idling),
		Walking:   clip(components.ClipWalking, c.Walking),
		Attacking: clip(components.ClipAttacking, c.Attacking),
		Dying:     clip(components.ClipDying, c.Dying),
	}
}

// For returns the clip for a behaviour state.
func (c Clips) For(state components.BehaviorState) components.ClipSpec {
	switch state {
	case components.StateWalking:
		return c.Walking
	case components.StateAttacking:
		return c.Attacking
	case components.StateDying:
		return c.Dying
	default:
		return c.Idling
	}
}

// AnimationSystem advances every animated entity's clip.
type AnimationSystem struct {
	filter ecs.Filter1[components.Animation]
}

// NewAnimationSystem creates a new animation system.
func NewAnimationSystem(w *ecs.World) *AnimationSystem {
	return &AnimationSystem{
		filter: *ecs.NewFilter1[components.Animation](w),
	}
}

// Update advances all clips by dt seconds.
func (s *AnimationSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		anim := query.Get()
		anim.Advance(dt)
	}
}
