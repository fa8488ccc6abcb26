package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/warsheep/round"
)

// ReportScreen renders the battle result and a confirm button.
type ReportScreen struct {
	renderer *Renderer
	width    int32
	height   int32
}

// NewReportScreen creates a report screen of the given panel size.
func NewReportScreen(width, height int32) *ReportScreen {
	return &ReportScreen{renderer: NewRenderer(), width: width, height: height}
}

// Draw renders the report centered on the screen.
// Returns true when the confirm button was clicked.
func (s *ReportScreen) Draw(res round.Result, screenW, screenH int32) bool {
	r := s.renderer
	x := (screenW - s.width) / 2
	y := (screenH - s.height) / 2
	r.DrawPanel(x, y, s.width, s.height)

	tx := x + 2*r.Theme.Padding
	ty := y + 2*r.Theme.Padding
	rl.DrawText(res.StatusText(), tx, ty, 20, rl.RayWhite)

	stats := fmt.Sprintf("Level %d | %.1fs | war machines slain %d | sheep lost %d",
		res.Level, res.Elapsed, res.WarMachinesSlain, res.SheepSlain)
	rl.DrawText(stats, tx, y+s.height-70, 14, rl.LightGray)

	label := "Continue"
	if res.Outcome == round.GameOver {
		label = "New game"
	}
	button := rl.Rectangle{
		X:      float32(x + s.width - 150),
		Y:      float32(y + s.height - 45),
		Width:  130,
		Height: 30,
	}
	return gui.Button(button, label)
}

// StartButton draws the button that sends the flock into battle.
// Returns true when clicked.
func StartButton(screenW int32) bool {
	return gui.Button(rl.Rectangle{X: float32(screenW - 150), Y: 10, Width: 140, Height: 34}, "Fight!")
}
