package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/warsheep/components"
)

var testClips = Clips{
	Idling:    components.ClipSpec{Name: components.ClipIdling, Frames: 2, FrameTime: 0.1, Repeating: true},
	Walking:   components.ClipSpec{Name: components.ClipWalking, Frames: 2, FrameTime: 0.1, Repeating: true},
	Attacking: components.ClipSpec{Name: components.ClipAttacking, Frames: 3, FrameTime: 0.1},
	Dying:     components.ClipSpec{Name: components.ClipDying, Frames: 2, FrameTime: 0.1},
}

func newSheep(x, y, health, damage, attackRange, spotting float64) Combatant {
	return Combatant{
		Pos:    &components.Position{X: x, Y: y},
		Health: &components.Health{Current: health, Max: health},
		Attack: &components.Attack{Damage: damage, Range: attackRange, SpottingRange: spotting},
		Speed:  1,
	}
}

func newMachine(x, y, health, damage, attackRange, spotting, speed float64) Combatant {
	anim := &components.Animation{}
	anim.Play(testClips.Idling)
	return Combatant{
		Pos:      &components.Position{X: x, Y: y},
		Health:   &components.Health{Current: health, Max: health},
		Attack:   &components.Attack{Damage: damage, Range: attackRange, SpottingRange: spotting},
		Speed:    speed,
		Behavior: &components.Behavior{State: components.StateIdling},
		Anim:     anim,
	}
}

// tick mimics the per-tick order of the battle: animations advance before behaviour.
func tick(s *BehaviorSystem, r *Roster, dt float64) *BehaviorReport {
	for i := range r.Hostile {
		r.Hostile[i].Anim.Advance(dt)
	}
	return s.Update(r, dt)
}

func TestIdleStaysIdleWithoutTarget(t *testing.T) {
	s := NewBehaviorSystem(testClips)
	r := &Roster{
		Friendly: []Combatant{newSheep(10, 0, 20, 1, 1, 2)},
		Hostile:  []Combatant{newMachine(0, 0, 10, 4, 1, 5, 2)},
	}

	for i := 0; i < 100; i++ {
		rep := tick(s, r, 0.1)
		if len(rep.Strikes) != 0 {
			t.Fatalf("tick %d: unexpected strike", i)
		}
	}
	m := r.Hostile[0]
	if m.Behavior.State != components.StateIdling {
		t.Errorf("state = %v, want Idling", m.Behavior.State)
	}
	if m.Pos.X != 0 || m.Pos.Y != 0 {
		t.Errorf("idle machine moved to (%v, %v)", m.Pos.X, m.Pos.Y)
	}
	if r.Friendly[0].Health.Current != 20 {
		t.Errorf("sheep health = %v, want 20", r.Friendly[0].Health.Current)
	}
}

func TestIdleSpotsAndWalks(t *testing.T) {
	s := NewBehaviorSystem(testClips)
	r := &Roster{
		Friendly: []Combatant{newSheep(4, 0, 20, 1, 1, 2)},
		Hostile:  []Combatant{newMachine(0, 0, 10, 4, 1, 5, 2)},
	}

	tick(s, r, 0.1)
	m := r.Hostile[0]
	if m.Behavior.State != components.StateWalking {
		t.Fatalf("state = %v, want Walking", m.Behavior.State)
	}
	if !m.Anim.Playing(components.ClipWalking) {
		t.Errorf("clip = %q, want walking", m.Anim.Clip.Name)
	}

	tick(s, r, 0.1)
	if math.Abs(m.Pos.X-0.2) > 1e-9 || m.Pos.Y != 0 {
		t.Errorf("pos = (%v, %v), want (0.2, 0)", m.Pos.X, m.Pos.Y)
	}
	if m.Anim.FlipX {
		t.Error("walking right should not flip")
	}
}

func TestWalkingFacesLeft(t *testing.T) {
	s := NewBehaviorSystem(testClips)
	r := &Roster{
		Friendly: []Combatant{newSheep(-4, 0, 20, 1, 1, 2)},
		Hostile:  []Combatant{newMachine(0, 0, 10, 4, 1, 5, 2)},
	}
	tick(s, r, 0.1)
	tick(s, r, 0.1)
	if !r.Hostile[0].Anim.FlipX {
		t.Error("walking left should flip")
	}
}

func TestWalkingLosesTarget(t *testing.T) {
	s := NewBehaviorSystem(testClips)
	r := &Roster{
		Friendly: []Combatant{newSheep(4, 0, 20, 1, 1, 2)},
		Hostile:  []Combatant{newMachine(0, 0, 10, 4, 1, 5, 2)},
	}
	tick(s, r, 0.1)
	r.Friendly[0].Pos.X = 50

	tick(s, r, 0.1)
	if got := r.Hostile[0].Behavior.State; got != components.StateIdling {
		t.Errorf("state = %v, want Idling", got)
	}
}

// TestSingleStrikePerApproach walks a machine into a sheep and checks it enters
// Attacking once and deals its damage exactly once per Attacking episode.
func TestSingleStrikePerApproach(t *testing.T) {
	s := NewBehaviorSystem(testClips)
	r := &Roster{
		Friendly: []Combatant{newSheep(3, 0, 100, 0, 1, 2)},
		Hostile:  []Combatant{newMachine(0, 0, 10, 4, 1, 5, 2)},
	}
	m := &r.Hostile[0]

	var (
		entries  int
		strikes  int
		prev     = m.Behavior.State
		episodes []int
	)
	for i := 0; i < 60; i++ {
		rep := tick(s, r, 0.1)
		state := m.Behavior.State
		if state == components.StateAttacking && prev != components.StateAttacking {
			entries++
			episodes = append(episodes, 0)
		}
		for _, st := range rep.Strikes {
			if !st.Hostile {
				t.Fatalf("tick %d: hostile pass produced a friendly strike", i)
			}
			strikes++
			episodes[len(episodes)-1]++
		}
		if prev == components.StateWalking && state == components.StateWalking {
			// The approach only closes distance
			if m.Pos.X > 3 {
				t.Fatalf("tick %d: overshot target", i)
			}
		}
		prev = state
	}

	if entries == 0 {
		t.Fatal("machine never attacked")
	}
	for i, n := range episodes {
		if n != 1 {
			t.Errorf("episode %d dealt %d strikes, want 1", i, n)
		}
	}
	want := 100 - 4*float64(strikes)
	if math.Abs(r.Friendly[0].Health.Current-want) > 1e-9 {
		t.Errorf("sheep health = %v, want %v", r.Friendly[0].Health.Current, want)
	}
}

func TestAttackingReturnsToIdleAfterClip(t *testing.T) {
	s := NewBehaviorSystem(testClips)
	r := &Roster{
		Friendly: []Combatant{newSheep(0.5, 0, 100, 0, 1, 2)},
		Hostile:  []Combatant{newMachine(0, 0, 10, 4, 1, 5, 2)},
	}
	m := &r.Hostile[0]
	m.Behavior.State = components.StateWalking

	tick(s, r, 0.1) // Walking -> Attacking
	if m.Behavior.State != components.StateAttacking || m.Behavior.HasStarted {
		t.Fatalf("state = %v started=%v, want fresh Attacking", m.Behavior.State, m.Behavior.HasStarted)
	}

	rep := tick(s, r, 0.1) // swing
	if len(rep.Strikes) != 1 || rep.Swings != 1 {
		t.Fatalf("strikes = %d swings = %d, want 1 and 1", len(rep.Strikes), rep.Swings)
	}

	// The 0.3s attack clip started on the entry tick and has one more frame to play
	rep = tick(s, r, 0.1)
	if len(rep.Strikes) != 0 {
		t.Fatal("follow-through tick struck again")
	}
	if m.Behavior.State != components.StateAttacking {
		t.Fatal("left Attacking before clip finished")
	}

	tick(s, r, 0.1)
	if m.Behavior.State != components.StateIdling {
		t.Errorf("state = %v, want Idling after clip", m.Behavior.State)
	}
}

func TestAttackingWithoutTargetInRangeIdles(t *testing.T) {
	s := NewBehaviorSystem(testClips)
	r := &Roster{
		Friendly: []Combatant{newSheep(0.5, 0, 100, 0, 1, 2)},
		Hostile:  []Combatant{newMachine(0, 0, 10, 4, 1, 5, 2)},
	}
	m := &r.Hostile[0]
	m.Behavior.State = components.StateAttacking
	r.Friendly[0].Pos.X = 3 // spotted but out of attack range

	rep := tick(s, r, 0.1)
	if len(rep.Strikes) != 0 {
		t.Error("struck a target outside attack range")
	}
	if rep.Swings != 1 {
		t.Errorf("swings = %d, want 1", rep.Swings)
	}
	if m.Behavior.State != components.StateIdling {
		t.Errorf("state = %v, want Idling", m.Behavior.State)
	}
}

func TestDyingExpiresAfterClip(t *testing.T) {
	s := NewBehaviorSystem(testClips)
	r := &Roster{Hostile: []Combatant{newMachine(0, 0, 10, 4, 1, 5, 2)}}
	m := &r.Hostile[0]
	m.Behavior.State = components.StateWalking
	m.Health.Current = 0

	deaths := s.CollectDeaths(r)
	if len(deaths.NewlyDying) != 1 {
		t.Fatalf("NewlyDying = %d, want 1", len(deaths.NewlyDying))
	}
	if again := s.CollectDeaths(r); len(again.NewlyDying) != 0 {
		t.Error("Dying was entered twice")
	}
	if fr, ho := r.Live(); fr != 0 || ho != 0 {
		t.Errorf("Live() = %d, %d, want 0, 0", fr, ho)
	}

	rep := tick(s, r, 0.1)
	if len(rep.Expired) != 0 {
		t.Fatal("expired before death clip finished")
	}
	rep = tick(s, r, 0.1)
	if len(rep.Expired) != 1 {
		t.Errorf("Expired = %d, want 1", len(rep.Expired))
	}
}

func TestDyingMachineIsNotTargeted(t *testing.T) {
	a := NewAttackSystem()
	r := &Roster{
		Friendly: []Combatant{newSheep(0, 0, 20, 1, 1, 2)},
		Hostile:  []Combatant{newMachine(0.5, 0, 10, 4, 1, 5, 2)},
	}
	r.Hostile[0].Behavior.State = components.StateDying

	if strikes := a.Update(r); len(strikes) != 0 {
		t.Errorf("strikes = %d, want 0", len(strikes))
	}
}
