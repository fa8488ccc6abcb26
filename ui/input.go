package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/camera"
	"github.com/pthm-cable/warsheep/game"
)

// InputState is the raw player input for one frame, in screen pixels.
type InputState struct {
	MouseX, MouseY float32
	Pressed        bool // left button went down this frame
	Released       bool // left button went up this frame
	Held           bool
	StartBattle    bool
	Confirm        bool
	PanX, PanY     float32 // right-drag delta
	Wheel          float32
}

// ReadInput polls raylib. Key 1 starts a battle and Space leaves the report.
func ReadInput() InputState {
	mouse := rl.GetMousePosition()
	s := InputState{
		MouseX:      mouse.X,
		MouseY:      mouse.Y,
		Pressed:     rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released:    rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Held:        rl.IsMouseButtonDown(rl.MouseButtonLeft),
		StartBattle: rl.IsKeyReleased(rl.KeyOne),
		Confirm:     rl.IsKeyReleased(rl.KeySpace),
		Wheel:       rl.GetMouseWheelMove(),
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		s.PanX, s.PanY = d.X, d.Y
	}
	return s
}

// Commands converts the input into game commands using the camera for the pointer.
func (s InputState) Commands(cam *camera.Camera) game.Commands {
	wx, wy := cam.ScreenToWorld(s.MouseX, s.MouseY)
	return game.Commands{
		Pointer:     r2.Vec{X: float64(wx), Y: float64(wy)},
		HasPointer:  true,
		Grab:        s.Pressed,
		Release:     s.Released,
		StartBattle: s.StartBattle,
		Confirm:     s.Confirm,
	}
}

// ApplyCamera pans and zooms the camera from the input.
func (s InputState) ApplyCamera(cam *camera.Camera) {
	if s.PanX != 0 || s.PanY != 0 {
		cam.Pan(-s.PanX, -s.PanY)
	}
	if s.Wheel > 0 {
		cam.ZoomBy(1.1)
	} else if s.Wheel < 0 {
		cam.ZoomBy(1 / 1.1)
	}
}
