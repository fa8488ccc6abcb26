package round

import "github.com/pthm-cable/warsheep/config"

// Scaling maps a level to the strength of the opposition and the victory reward.
type Scaling struct {
	BaseCount      int
	CountEvery     int
	BasePower      int
	PowerPerLevel  int
	RewardBase     int
	RewardPerLevel int
}

// ScalingFromConfig builds the scaling rules from config.
func ScalingFromConfig(cfg *config.Config) Scaling {
	return Scaling{
		BaseCount:      cfg.Hostiles.BaseCount,
		CountEvery:     cfg.Hostiles.CountEvery,
		BasePower:      cfg.Hostiles.BasePower,
		PowerPerLevel:  cfg.Hostiles.PowerPerLevel,
		RewardBase:     cfg.Reward.Base,
		RewardPerLevel: cfg.Reward.PerLevel,
	}
}

// HostileCount returns how many war machines spawn at a level.
func (s Scaling) HostileCount(level int) int {
	n := s.BaseCount
	if s.CountEvery > 0 {
		n += (level - 1) / s.CountEvery
	}
	return max(n, 1)
}

// HostileLevelSum returns the level sum war machine stats are derived from.
func (s Scaling) HostileLevelSum(level int) int {
	return max(s.BasePower+s.PowerPerLevel*(level-1), 1)
}

// Reward returns how many sheep a victory at the given level grants.
func (s Scaling) Reward(level int) int {
	return max(s.RewardBase+s.RewardPerLevel*(level-1), 0)
}
