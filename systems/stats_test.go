package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/warsheep/components"
)

// testBase disables the range floor so raw formula values are visible.
var testBase = StatBase{Health: 20, Speed: 0.5, Damage: 2, Range: 1, Spotting: 3, MinRange: -1}

func TestDeriveHealthIsLinear(t *testing.T) {
	for n := 1; n <= 64; n++ {
		s, err := DeriveSum(testBase, n)
		if err != nil {
			t.Fatalf("DeriveSum(%d) error = %v", n, err)
		}
		want := testBase.Health * float64(n)
		if s.Health.Max != want || s.Health.Current != want {
			t.Errorf("health(%d) = %v/%v, want %v", n, s.Health.Current, s.Health.Max, want)
		}
	}
}

func TestDeriveFormulas(t *testing.T) {
	tests := []struct {
		name                         string
		levels                       components.Levels
		speed, damage, rng, spotting float64
	}{
		{
			name:     "base level",
			levels:   components.Levels{Base: 1},
			speed:    1,
			damage:   2,
			rng:      -0.8,
			spotting: 3,
		},
		{
			name:     "two levels",
			levels:   components.Levels{Base: 1, Spear: 1},
			speed:    1.5,
			damage:   3,
			rng:      0.2,
			spotting: 6,
		},
		{
			name:     "eight levels",
			levels:   components.Levels{Base: 4, Tank: 2, Medic: 2},
			speed:    2.5,
			damage:   9,
			rng:      2.2,
			spotting: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Derive(testBase, tt.levels)
			if err != nil {
				t.Fatalf("Derive() error = %v", err)
			}
			checks := []struct {
				field     string
				got, want float64
			}{
				{"speed", s.Speed.Value, tt.speed},
				{"damage", s.Attack.Damage, tt.damage},
				{"range", s.Attack.Range, tt.rng},
				{"spotting", s.Attack.SpottingRange, tt.spotting},
			}
			for _, c := range checks {
				if math.Abs(c.got-c.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestDeriveRangeFloor(t *testing.T) {
	base := testBase
	base.MinRange = 0.5

	s := MustDerive(base, components.Levels{Base: 1})
	if s.Attack.Range != 0.5 {
		t.Errorf("range = %v, want floor 0.5", s.Attack.Range)
	}

	// Above the floor the formula wins
	s = MustDerive(base, components.Levels{Base: 8})
	if math.Abs(s.Attack.Range-2.2) > 1e-9 {
		t.Errorf("range = %v, want 2.2", s.Attack.Range)
	}
}

func TestDeriveRejectsEmptyLevels(t *testing.T) {
	_, err := Derive(testBase, components.Levels{})
	if !errors.Is(err, ErrInvalidLevels) {
		t.Fatalf("Derive(empty) error = %v, want ErrInvalidLevels", err)
	}

	_, err = DeriveSum(testBase, -3)
	if !errors.Is(err, ErrInvalidLevels) {
		t.Fatalf("DeriveSum(-3) error = %v, want ErrInvalidLevels", err)
	}
}

func TestMustDerivePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDerive(empty) should panic")
		}
	}()
	MustDerive(testBase, components.Levels{})
}

func TestDeriveIsDeterministic(t *testing.T) {
	levels := components.Levels{Base: 3, Spear: 1}
	a := MustDerive(testBase, levels)
	b := MustDerive(testBase, levels)
	if a != b {
		t.Errorf("Derive() not deterministic: %+v vs %+v", a, b)
	}
}
