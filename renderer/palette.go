// Package renderer draws the game world with raylib primitives.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/warsheep/components"
)

var (
	grassColor  = rl.Color{R: 92, G: 140, B: 70, A: 255}
	fenceColor  = rl.Color{R: 120, G: 90, B: 60, A: 255}
	healthBg    = rl.Color{R: 40, G: 40, B: 40, A: 200}
	healthHigh  = rl.Color{R: 100, G: 200, B: 100, A: 255}
	healthLow   = rl.Color{R: 200, G: 100, B: 100, A: 255}
	machineBody = rl.Color{R: 110, G: 110, B: 125, A: 255}
	dragOutline = rl.Color{R: 255, G: 230, B: 120, A: 255}
)

// SheepTint maps a genotype color in [0.1, 1] to a grey tint.
func SheepTint(color float64) rl.Color {
	if color < 0 {
		color = 0
	} else if color > 1 {
		color = 1
	}
	v := uint8(math.Round(color * 255))
	return rl.Color{R: v, G: v, B: v, A: 255}
}

// SheepRadius returns the drawn radius in world units.
// Merged sheep grow with the log of their level sum so large flocks stay readable.
func SheepRadius(scale float64, levels int) float64 {
	if levels < 1 {
		levels = 1
	}
	return scale / 2 * (1 + 0.25*math.Log2(float64(levels)))
}

// MachineTint shades a war machine by behaviour state; frame flicker makes the
// attack and death clips visible without sprites.
func MachineTint(state components.BehaviorState, frame int) rl.Color {
	c := machineBody
	switch state {
	case components.StateAttacking:
		c = rl.Color{R: 200, G: 80, B: 60, A: 255}
	case components.StateDying:
		fade := 255 - 40*frame
		if fade < 40 {
			fade = 40
		}
		c.A = uint8(fade)
	}
	if state == components.StateWalking && frame%2 == 1 {
		c.R += 15
		c.G += 15
		c.B += 15
	}
	return c
}

// HealthColor picks the fill color of a health bar.
func HealthColor(fraction float64) rl.Color {
	if fraction < 0.35 {
		return healthLow
	}
	return healthHigh
}
