package components

// Clip names used by war machine animations.
const (
	ClipIdling    = "idling"
	ClipWalking   = "walking"
	ClipAttacking = "attacking"
	ClipDying     = "dying"
)

// ClipSpec describes the timing of an animation clip.
type ClipSpec struct {
	Name      string
	Frames    int
	FrameTime float64 // seconds per frame
	Repeating bool
}

// Duration returns the length of one pass through the clip.
func (c ClipSpec) Duration() float64 {
	return float64(c.Frames) * c.FrameTime
}

// Animation tracks clip playback for an entity.
// Rendering reads Frame and FlipX; the behaviour machine only asks HasFinished.
type Animation struct {
	Clip       ClipSpec
	Frame      int
	Elapsed    float64 // seconds into the current frame
	FlipX      bool
	PlayedOnce bool
}

// Play starts a clip from its first frame.
func (a *Animation) Play(clip ClipSpec) {
	a.Clip = clip
	a.Frame = 0
	a.Elapsed = 0
	a.PlayedOnce = false
}

// Playing reports whether the named clip is the current one.
func (a *Animation) Playing(name string) bool {
	return a.Clip.Name == name
}

// HasFinished reports whether the clip has completed at least one pass.
func (a *Animation) HasFinished() bool {
	return a.PlayedOnce
}

// Advance steps the clip forward by dt seconds.
func (a *Animation) Advance(dt float64) {
	if a.Clip.Frames <= 0 || a.Clip.FrameTime <= 0 {
		// Degenerate clips finish immediately
		a.PlayedOnce = true
		return
	}

	a.Elapsed += dt
	for a.Elapsed >= a.Clip.FrameTime {
		a.Elapsed -= a.Clip.FrameTime
		if a.Frame+1 >= a.Clip.Frames {
			a.PlayedOnce = true
			if !a.Clip.Repeating {
				a.Elapsed = 0
				return
			}
			a.Frame = 0
		} else {
			a.Frame++
		}
	}
}
