package ui

import (
	"math"
	"testing"

	"github.com/pthm-cable/warsheep/camera"
)

func TestInputCommands(t *testing.T) {
	cam := camera.New(800, 600, 50)

	tests := []struct {
		name   string
		in     InputState
		wx, wy float64
	}{
		{"center is origin", InputState{MouseX: 400, MouseY: 300, Pressed: true}, 0, 0},
		{"up and right", InputState{MouseX: 500, MouseY: 200, Released: true}, 2, 2},
		{"down and left", InputState{MouseX: 350, MouseY: 400}, -1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := tt.in.Commands(cam)
			if !cmds.HasPointer {
				t.Fatal("HasPointer = false")
			}
			if math.Abs(cmds.Pointer.X-tt.wx) > 1e-4 || math.Abs(cmds.Pointer.Y-tt.wy) > 1e-4 {
				t.Errorf("Pointer = %v, want (%v, %v)", cmds.Pointer, tt.wx, tt.wy)
			}
			if cmds.Grab != tt.in.Pressed || cmds.Release != tt.in.Released {
				t.Errorf("Grab/Release = %v/%v, want %v/%v", cmds.Grab, cmds.Release, tt.in.Pressed, tt.in.Released)
			}
		})
	}
}

func TestInputKeys(t *testing.T) {
	cam := camera.New(800, 600, 50)
	cmds := InputState{StartBattle: true, Confirm: true}.Commands(cam)
	if !cmds.StartBattle || !cmds.Confirm {
		t.Errorf("commands = %+v, want start and confirm", cmds)
	}
}

func TestApplyCameraZoom(t *testing.T) {
	cam := camera.New(800, 600, 50)
	InputState{Wheel: 1}.ApplyCamera(cam)
	if cam.Zoom <= 1 {
		t.Errorf("zoom = %v after wheel up, want > 1", cam.Zoom)
	}
	InputState{PanX: 50}.ApplyCamera(cam)
	if cam.X >= 0 {
		t.Errorf("camera x = %v after dragging right, want < 0", cam.X)
	}
}
