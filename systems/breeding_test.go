package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/warsheep/components"
)

var sumParams = BreedParams{Rule: LevelRuleSum, ColorJitter: 0.1, MinColor: 0.1}

func TestCombineSumsLevels(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		a, b components.Levels
	}{
		{"two base sheep", components.Levels{Base: 1}, components.Levels{Base: 1}},
		{"mixed", components.Levels{Base: 2, Spear: 1}, components.Levels{Base: 1, Tank: 3, Medic: 1}},
		{"large", components.Levels{Base: 16, Spear: 4, Tank: 4, Medic: 8}, components.Levels{Base: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := components.Genotype{Color: 0.9, Levels: tt.a}
			b := components.Genotype{Color: 0.5, Levels: tt.b}
			child := Combine(a, b, sumParams, rng)
			if want := tt.a.Add(tt.b); child.Levels != want {
				t.Errorf("Levels = %+v, want %+v", child.Levels, want)
			}
			if child.Levels.Sum() != tt.a.Sum()+tt.b.Sum() {
				t.Errorf("Sum = %d, want %d", child.Levels.Sum(), tt.a.Sum()+tt.b.Sum())
			}
		})
	}
}

func TestCombineTwoBaseSheepDoublesHealth(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := components.NewGenotype(1.0)
	b := components.NewGenotype(0.2)

	child := Combine(a, b, sumParams, rng)
	if child.Levels != (components.Levels{Base: 2}) {
		t.Fatalf("Levels = %+v, want {Base: 2}", child.Levels)
	}
	stats := MustDerive(testBase, child.Levels)
	if stats.Health.Max != testBase.Health*2 {
		t.Errorf("health = %v, want %v", stats.Health.Max, testBase.Health*2)
	}
}

func TestCombineColor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tests := []struct {
		name     string
		a, b     float64
		min, max float64
	}{
		{"mean with jitter", 0.8, 0.4, 0.5, 0.7},
		{"floored at min color", 0.1, 0.1, 0.1, 0.2},
		{"capped at white", 1.0, 1.0, 0.9, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				child := Combine(components.NewGenotype(tt.a), components.NewGenotype(tt.b), sumParams, rng)
				if child.Color < tt.min-1e-9 || child.Color > tt.max+1e-9 {
					t.Fatalf("Color = %v, want in [%v, %v]", child.Color, tt.min, tt.max)
				}
			}
		})
	}
}

func TestCombineInheritRule(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	params := BreedParams{Rule: LevelRuleInherit, ColorJitter: 0.1, MinColor: 0.1}
	a := components.Genotype{Color: 0.9, Levels: components.Levels{Base: 3, Spear: 1}}
	b := components.Genotype{Color: 0.9, Levels: components.Levels{Base: 1, Medic: 2}}

	for i := 0; i < 200; i++ {
		child := Combine(a, b, params, rng)
		fromA := child.Levels.Sum() == a.Levels.Sum()+1 && diffOne(a.Levels, child.Levels)
		fromB := child.Levels.Sum() == b.Levels.Sum()+1 && diffOne(b.Levels, child.Levels)
		if !fromA && !fromB {
			t.Fatalf("Levels = %+v is not one parent plus one counter", child.Levels)
		}
	}
}

// diffOne reports whether child equals parent with exactly one counter raised by one.
func diffOne(parent, child components.Levels) bool {
	d := []int{
		child.Base - parent.Base,
		child.Spear - parent.Spear,
		child.Tank - parent.Tank,
		child.Medic - parent.Medic,
	}
	ones := 0
	for _, v := range d {
		switch v {
		case 0:
		case 1:
			ones++
		default:
			return false
		}
	}
	return ones == 1
}

func TestParseLevelRule(t *testing.T) {
	tests := []struct {
		in      string
		want    LevelRule
		wantErr bool
	}{
		{"sum", LevelRuleSum, false},
		{"", LevelRuleSum, false},
		{"inherit", LevelRuleInherit, false},
		{"average", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevelRule(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevelRule(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevelRule(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// breedWorld is a minimal world with a sheep mapper for HandleDrop tests.
type breedWorld struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Position, components.Sheep]
	nextID uint32
}

func newBreedWorld() *breedWorld {
	w := ecs.NewWorld()
	return &breedWorld{
		world:  w,
		mapper: ecs.NewMap2[components.Position, components.Sheep](w),
	}
}

func (b *breedWorld) spawn(pos r2.Vec, g components.Genotype) ecs.Entity {
	b.nextID++
	p := components.Position{X: pos.X, Y: pos.Y}
	s := components.Sheep{ID: b.nextID, Genotype: g}
	return b.mapper.NewEntity(&p, &s)
}

func (b *breedWorld) count() int {
	filter := ecs.NewFilter1[components.Sheep](b.world)
	query := filter.Query()
	n := 0
	for query.Next() {
		n++
	}
	return n
}

func TestHandleDropMergesOverlappingSheep(t *testing.T) {
	bw := newBreedWorld()
	s := NewBreedingSystem(bw.world, sumParams, 1.0, rand.New(rand.NewSource(5)))

	dropped := bw.spawn(r2.Vec{X: 0, Y: 0}, components.NewGenotype(0.9))
	mate := bw.spawn(r2.Vec{X: 0.6, Y: 0.6}, components.NewGenotype(0.9))
	bystander := bw.spawn(r2.Vec{X: 4, Y: 4}, components.NewGenotype(0.9))

	breed, ok := s.HandleDrop(dropped, bw.spawn)
	if !ok {
		t.Fatal("HandleDrop() found no mate")
	}
	if bw.world.Alive(dropped) || bw.world.Alive(mate) {
		t.Error("parents should be removed")
	}
	if !bw.world.Alive(bystander) || !bw.world.Alive(breed.Child) {
		t.Error("bystander and child should be alive")
	}
	if bw.count() != 2 {
		t.Errorf("sheep count = %d, want 2", bw.count())
	}
	if breed.Genotype.Levels != (components.Levels{Base: 2}) {
		t.Errorf("child levels = %+v, want {Base: 2}", breed.Genotype.Levels)
	}
	if math.Abs(breed.Pos.X-0.6) > 1e-9 || math.Abs(breed.Pos.Y-0.6) > 1e-9 {
		t.Errorf("child pos = %v, want mate position", breed.Pos)
	}
}

func TestHandleDropWithoutMate(t *testing.T) {
	bw := newBreedWorld()
	s := NewBreedingSystem(bw.world, sumParams, 1.0, rand.New(rand.NewSource(6)))

	dropped := bw.spawn(r2.Vec{}, components.NewGenotype(0.9))
	bw.spawn(r2.Vec{X: 1.5}, components.NewGenotype(0.9))

	if _, ok := s.HandleDrop(dropped, bw.spawn); ok {
		t.Error("HandleDrop() merged sheep beyond reach")
	}
	if !bw.world.Alive(dropped) || bw.count() != 2 {
		t.Error("no sheep should be removed")
	}
}
