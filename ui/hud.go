package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/warsheep/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Phase       string
	Level       int
	Round       int
	Flock       int
	FlockLevels int
	WarMachines int
	Remaining   float64 // seconds left in the battle
	Duration    float64
	FPS         int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer(), x: 10, y: 10, width: 260}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	lines := int32(4)
	if data.Phase == "battle" {
		lines++
	}
	height := lines*r.Theme.LineHeight + 2*r.Theme.Padding + r.Theme.LineHeight
	r.DrawPanel(h.x, h.y, h.width, height)

	x := h.x + r.Theme.Padding
	y := h.y + r.Theme.Padding
	y = r.DrawSectionHeader(x, y, fmt.Sprintf("Level %d", data.Level))
	y = r.DrawLabelValue(x, y, "Phase", data.Phase)
	y = r.DrawLabelValue(x, y, "Flock", fmt.Sprintf("%d (levels %d)", data.Flock, data.FlockLevels))
	y = r.DrawLabelValue(x, y, "Machines", fmt.Sprintf("%d", data.WarMachines))

	if data.Phase == "battle" && data.Duration > 0 {
		y = r.DrawBar(x, y, fmt.Sprintf("%.0fs", data.Remaining), float32(data.Remaining/data.Duration), h.width-2*r.Theme.Padding)
	}
	rl.DrawText(fmt.Sprintf("Round %d | FPS %d", data.Round, data.FPS), x, y, 12, rl.Gray)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.RayWhite)
}

// PerfPanel renders per-phase battle tick timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	height := int32(len(telemetry.Phases)+2)*14 + 2*r.Theme.Padding + 4
	r.DrawPanel(p.x, p.y, 240, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding
	rl.DrawText(fmt.Sprintf("Tick %s (%.0f/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond), x, y, 14, rl.Yellow)
	y += 18

	for _, name := range telemetry.Phases {
		pct := stats.PhasePct[name]
		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-12s %8s %5.1f%%", name, stats.PhaseAvg[name].Round(time.Microsecond), pct), x, y, 12, color)
		y += 14
	}
}
