package telemetry

import "github.com/pthm-cable/warsheep/round"

// RoundInfo describes the forces that entered a battle.
type RoundInfo struct {
	Round           int
	Flock           int // sheep on the battlefield at the start
	FlockLevelSum   int // total levels across the flock
	Hostiles        int
	HostileLevelSum int // level sum of each war machine
}

// Collector accumulates combat events for one round and produces RoundStats.
type Collector struct {
	info RoundInfo

	ticks          int
	swings         int
	hostileHits    int
	friendlyHits   int
	hostileDamage  float64
	friendlyDamage float64
	sheepKilled    int
	machinesKilled int
	breeds         int // counted since the previous flush, so herding merges land in the next round
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// BeginRound records what entered the battle.
func (c *Collector) BeginRound(info RoundInfo) {
	c.info = info
}

// RecordTick counts a battle tick.
func (c *Collector) RecordTick() {
	c.ticks++
}

// RecordSwings counts war machine attack swings, hits or not.
func (c *Collector) RecordSwings(n int) {
	c.swings += n
}

// RecordStrike records damage dealt. hostile is true when a war machine struck.
func (c *Collector) RecordStrike(hostile bool, damage float64, kill bool) {
	if hostile {
		c.hostileHits++
		c.hostileDamage += damage
		if kill {
			c.sheepKilled++
		}
		return
	}
	c.friendlyHits++
	c.friendlyDamage += damage
	if kill {
		c.machinesKilled++
	}
}

// RecordBreed counts a completed merge.
func (c *Collector) RecordBreed() {
	c.breeds++
}

// Flush produces the stats for the finished round and resets all counters.
// survivorHealth holds the health fraction of every sheep left standing.
func (c *Collector) Flush(res round.Result, survivorHealth []float64) RoundStats {
	health := Summarize(survivorHealth)

	stats := RoundStats{
		Round:            c.info.Round,
		Level:            res.Level,
		Outcome:          res.Outcome.String(),
		Seconds:          res.Elapsed,
		Ticks:            c.ticks,
		Flock:            c.info.Flock,
		FlockLevelSum:    c.info.FlockLevelSum,
		Hostiles:         c.info.Hostiles,
		HostileLevelSum:  c.info.HostileLevelSum,
		Breeds:           c.breeds,
		Swings:           c.swings,
		HostileHits:      c.hostileHits,
		FriendlyHits:     c.friendlyHits,
		HostileDamage:    c.hostileDamage,
		FriendlyDamage:   c.friendlyDamage,
		SheepSlain:       res.SheepSlain,
		WarMachinesSlain: res.WarMachinesSlain,
		RewardSheep:      res.RewardSheep,
		Survivors:        health.N,
		HealthMean:       health.Mean,
		HealthStd:        health.Std,
		HealthP10:        health.P10,
		HealthP50:        health.P50,
		HealthP90:        health.P90,
	}

	*c = Collector{}
	return stats
}

// Kills returns the kills recorded so far in the current round.
func (c *Collector) Kills() (warMachines, sheep int) {
	return c.machinesKilled, c.sheepKilled
}
