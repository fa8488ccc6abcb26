package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RoundStats is one row of rounds.csv.
type RoundStats struct {
	Round   int     `csv:"round"`
	Level   int     `csv:"level"`
	Outcome string  `csv:"outcome"`
	Seconds float64 `csv:"seconds"`
	Ticks   int     `csv:"ticks"`

	// Forces
	Flock           int `csv:"flock"`
	FlockLevelSum   int `csv:"flock_level_sum"`
	Hostiles        int `csv:"hostiles"`
	HostileLevelSum int `csv:"hostile_level_sum"`
	Breeds          int `csv:"breeds"`

	// Combat
	Swings           int     `csv:"swings"`
	HostileHits      int     `csv:"hostile_hits"`
	FriendlyHits     int     `csv:"friendly_hits"`
	HostileDamage    float64 `csv:"hostile_damage"`
	FriendlyDamage   float64 `csv:"friendly_damage"`
	SheepSlain       int     `csv:"sheep_slain"`
	WarMachinesSlain int     `csv:"war_machines_slain"`
	RewardSheep      int     `csv:"reward_sheep"`

	// Survivor health fractions
	Survivors  int     `csv:"survivors"`
	HealthMean float64 `csv:"health_mean"`
	HealthStd  float64 `csv:"health_std"`
	HealthP10  float64 `csv:"health_p10"`
	HealthP50  float64 `csv:"health_p50"`
	HealthP90  float64 `csv:"health_p90"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s RoundStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("round", s.Round),
		slog.Int("level", s.Level),
		slog.String("outcome", s.Outcome),
		slog.Float64("seconds", s.Seconds),
		slog.Int("flock", s.Flock),
		slog.Int("flock_level_sum", s.FlockLevelSum),
		slog.Int("hostiles", s.Hostiles),
		slog.Int("swings", s.Swings),
		slog.Float64("hostile_damage", s.HostileDamage),
		slog.Float64("friendly_damage", s.FriendlyDamage),
		slog.Int("sheep_slain", s.SheepSlain),
		slog.Int("war_machines_slain", s.WarMachinesSlain),
		slog.Int("survivors", s.Survivors),
		slog.Float64("health_mean", s.HealthMean),
	)
}

// LogStats logs the round stats using slog.
func (s RoundStats) LogStats() {
	slog.Info("round_stats", "stats", s)
}

// Summary is a distribution summary of a sample.
type Summary struct {
	N    int
	Mean float64
	Std  float64 // sample standard deviation, 0 for fewer than two values
	P10  float64
	P50  float64
	P90  float64
}

// Summarize computes mean, standard deviation and empirical quantiles.
// Returns a zero Summary for an empty sample.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := Summary{
		N:    n,
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}
