package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/warsheep/round"
)

func TestCollectorFlush(t *testing.T) {
	c := NewCollector()
	c.RecordBreed()
	c.RecordBreed()
	c.BeginRound(RoundInfo{Round: 4, Flock: 8, FlockLevelSum: 10, Hostiles: 2, HostileLevelSum: 3})

	for i := 0; i < 30; i++ {
		c.RecordTick()
	}
	c.RecordSwings(3)
	c.RecordStrike(true, 4, false)
	c.RecordStrike(true, 4, true)
	c.RecordStrike(false, 0.5, false)
	c.RecordStrike(false, 0.5, true)
	c.RecordStrike(false, 0.5, false)

	if m, s := c.Kills(); m != 1 || s != 1 {
		t.Errorf("Kills() = %d, %d, want 1, 1", m, s)
	}

	res := round.Result{Outcome: round.Victory, Level: 3, WarMachinesSlain: 2, SheepSlain: 1, RewardSheep: 4, Elapsed: 0.5}
	stats := c.Flush(res, []float64{1, 0.5})

	if stats.Round != 4 || stats.Level != 3 || stats.Outcome != "victory" {
		t.Errorf("header = %d/%d/%s", stats.Round, stats.Level, stats.Outcome)
	}
	if stats.Ticks != 30 || stats.Breeds != 2 || stats.Swings != 3 {
		t.Errorf("ticks/breeds/swings = %d/%d/%d", stats.Ticks, stats.Breeds, stats.Swings)
	}
	if stats.HostileHits != 2 || stats.FriendlyHits != 3 {
		t.Errorf("hits = %d/%d, want 2/3", stats.HostileHits, stats.FriendlyHits)
	}
	if stats.HostileDamage != 8 || math.Abs(stats.FriendlyDamage-1.5) > 1e-9 {
		t.Errorf("damage = %v/%v, want 8/1.5", stats.HostileDamage, stats.FriendlyDamage)
	}
	if stats.Survivors != 2 || math.Abs(stats.HealthMean-0.75) > 1e-9 {
		t.Errorf("survivors = %d mean = %v", stats.Survivors, stats.HealthMean)
	}
	if stats.Flock != 8 || stats.Hostiles != 2 || stats.RewardSheep != 4 {
		t.Errorf("forces = %+v", stats)
	}

	// Flush resets everything
	next := c.Flush(round.Result{}, nil)
	if next.Ticks != 0 || next.Breeds != 0 || next.Swings != 0 || next.Round != 0 {
		t.Errorf("second Flush() = %+v, want zero counters", next)
	}
}
