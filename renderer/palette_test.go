package renderer

import (
	"testing"

	"github.com/pthm-cable/warsheep/components"
)

func TestSheepTint(t *testing.T) {
	tests := []struct {
		color float64
		want  uint8
	}{
		{1, 255},
		{0.1, 26},
		{2, 255},
		{-1, 0},
	}
	for _, tt := range tests {
		got := SheepTint(tt.color)
		if got.R != tt.want || got.G != tt.want || got.B != tt.want || got.A != 255 {
			t.Errorf("SheepTint(%v) = %+v, want grey %d", tt.color, got, tt.want)
		}
	}
}

func TestSheepRadiusGrowsWithLevels(t *testing.T) {
	base := SheepRadius(1, 1)
	if base != 0.5 {
		t.Errorf("SheepRadius(1, 1) = %v, want 0.5", base)
	}
	if SheepRadius(1, 0) != base {
		t.Error("level sums below one should draw as a base sheep")
	}
	if got := SheepRadius(1, 16); got != 1.0 {
		t.Errorf("SheepRadius(1, 16) = %v, want 1", got)
	}
}

func TestMachineTintDyingFades(t *testing.T) {
	first := MachineTint(components.StateDying, 0)
	last := MachineTint(components.StateDying, 5)
	if last.A >= first.A {
		t.Errorf("dying alpha %d should fade below %d", last.A, first.A)
	}
	if MachineTint(components.StateIdling, 0) != machineBody {
		t.Error("idle war machine should use the body color")
	}
}
