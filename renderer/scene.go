package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/warsheep/camera"
	"github.com/pthm-cable/warsheep/components"
	"github.com/pthm-cable/warsheep/game"
)

// SceneRenderer draws the field and its creatures.
type SceneRenderer struct {
	sheepScale float64
}

// NewSceneRenderer creates a scene renderer for sheep of the given world scale.
func NewSceneRenderer(sheepScale float64) *SceneRenderer {
	return &SceneRenderer{sheepScale: sheepScale}
}

// DrawField fills the screen and outlines the active area.
func (r *SceneRenderer) DrawField(cam *camera.Camera, area components.Bounds) {
	rl.ClearBackground(grassColor)

	x0, y0 := cam.WorldToScreen(float32(area.MinX), float32(area.MaxY))
	x1, y1 := cam.WorldToScreen(float32(area.MaxX), float32(area.MinY))
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 3, fenceColor)
}

// DrawCreatures draws every visible creature with its health bar.
func (r *SceneRenderer) DrawCreatures(cam *camera.Camera, views []game.CreatureView) {
	for i := range views {
		v := &views[i]
		switch v.Kind {
		case game.KindSheep:
			r.drawSheep(cam, v)
		case game.KindWarMachine:
			r.drawMachine(cam, v)
		}
	}
}

func (r *SceneRenderer) drawSheep(cam *camera.Camera, v *game.CreatureView) {
	radius := float32(SheepRadius(r.sheepScale, v.Levels))
	if !cam.IsVisible(float32(v.X), float32(v.Y), radius) {
		return
	}
	sx, sy := cam.WorldToScreen(float32(v.X), float32(v.Y))
	pr := cam.Length(radius)

	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, pr, SheepTint(v.Color))
	rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, pr, rl.DarkGray)
	if v.Dragged {
		rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, pr+3, dragOutline)
	}
	r.drawHealth(sx, sy-pr-6, pr*2, v.HealthFraction)
}

func (r *SceneRenderer) drawMachine(cam *camera.Camera, v *game.CreatureView) {
	half := float32(r.sheepScale) * 0.6
	if !cam.IsVisible(float32(v.X), float32(v.Y), half) {
		return
	}
	sx, sy := cam.WorldToScreen(float32(v.X), float32(v.Y))
	ph := cam.Length(half)

	body := rl.Rectangle{X: sx - ph, Y: sy - ph, Width: 2 * ph, Height: 2 * ph}
	rl.DrawRectangleRec(body, MachineTint(v.State, v.Frame))
	rl.DrawRectangleLinesEx(body, 2, rl.Black)

	// Barrel points the way the machine faces
	dir := float32(1)
	if v.FlipX {
		dir = -1
	}
	rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: sx + dir*ph*1.5, Y: sy}, 4, rl.Black)

	if v.State != components.StateDying {
		r.drawHealth(sx, sy-ph-6, ph*2, v.HealthFraction)
	}
}

func (r *SceneRenderer) drawHealth(cx, y, width float32, fraction float64) {
	x := cx - width/2
	rl.DrawRectangleV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: width, Y: 4}, healthBg)
	rl.DrawRectangleV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: width * float32(fraction), Y: 4}, HealthColor(fraction))
}
