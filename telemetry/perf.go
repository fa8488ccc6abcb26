package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the battle tick.
const (
	PhaseTimer     = "timer"
	PhaseAnimation = "animation"
	PhaseWander    = "wander"
	PhaseRoster    = "roster"
	PhaseBehavior  = "behavior"
	PhaseAttack    = "auto_attack"
	PhaseDeaths    = "deaths"
	PhaseBounds    = "bounds"
	PhaseCleanup   = "cleanup"
	PhaseEvaluate  = "evaluate"
)

// Phases lists the tick phases in execution order.
var Phases = []string{
	PhaseTimer, PhaseAnimation, PhaseWander, PhaseRoster, PhaseBehavior,
	PhaseAttack, PhaseDeaths, PhaseBounds, PhaseCleanup, PhaseEvaluate,
}

// tickSample holds timing data for a single tick.
type tickSample struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector times battle ticks and their phases over a rolling window.
type PerfCollector struct {
	window  []tickSample
	next    int
	filled  int
	current tickSample

	tickStart  time.Time
	phaseStart time.Time
	phase      string

	// Frame timing (graphics mode only)
	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{window: make([]tickSample, windowSize)}
}

// Reset drops all samples, e.g. between rounds.
func (p *PerfCollector) Reset() {
	clear(p.window)
	p.next, p.filled = 0, 0
	p.phase = ""
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = tickSample{phases: make(map[string]time.Duration, len(Phases))}
	p.phase = ""
}

// StartPhase ends the running phase, if any, and starts timing the named one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

// EndTick closes the tick and stores it in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.current.total = now.Sub(p.tickStart)

	p.window[p.next] = p.current
	p.next = (p.next + 1) % len(p.window)
	p.filled = min(p.filled+1, len(p.window))
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// RecordFrame records the time since the previous frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	Ticks           int
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of the average tick

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the samples currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Ticks:         p.filled,
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	sums := make(map[string]time.Duration)
	for i, sample := range p.window[:p.filled] {
		total += sample.total
		if i == 0 || sample.total < s.MinTickDuration {
			s.MinTickDuration = sample.total
		}
		s.MaxTickDuration = max(s.MaxTickDuration, sample.total)
		for phase, d := range sample.phases {
			sums[phase] += d
		}
	}

	n := time.Duration(p.filled)
	s.AvgTickDuration = total / n
	for phase, sum := range sums {
		s.PhaseAvg[phase] = sum / n
		if s.AvgTickDuration > 0 {
			s.PhasePct[phase] = float64(s.PhaseAvg[phase]) / float64(s.AvgTickDuration) * 100
		}
	}
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	return s
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"ticks", s.Ticks,
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Round        int     `csv:"round"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	TimerPct     float64 `csv:"timer_pct"`
	AnimationPct float64 `csv:"animation_pct"`
	WanderPct    float64 `csv:"wander_pct"`
	RosterPct    float64 `csv:"roster_pct"`
	BehaviorPct  float64 `csv:"behavior_pct"`
	AttackPct    float64 `csv:"auto_attack_pct"`
	DeathsPct    float64 `csv:"deaths_pct"`
	BoundsPct    float64 `csv:"bounds_pct"`
	CleanupPct   float64 `csv:"cleanup_pct"`
	EvaluatePct  float64 `csv:"evaluate_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(round int) PerfStatsCSV {
	return PerfStatsCSV{
		Round:        round,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		TimerPct:     s.PhasePct[PhaseTimer],
		AnimationPct: s.PhasePct[PhaseAnimation],
		WanderPct:    s.PhasePct[PhaseWander],
		RosterPct:    s.PhasePct[PhaseRoster],
		BehaviorPct:  s.PhasePct[PhaseBehavior],
		AttackPct:    s.PhasePct[PhaseAttack],
		DeathsPct:    s.PhasePct[PhaseDeaths],
		BoundsPct:    s.PhasePct[PhaseBounds],
		CleanupPct:   s.PhasePct[PhaseCleanup],
		EvaluatePct:  s.PhasePct[PhaseEvaluate],
	}
}
