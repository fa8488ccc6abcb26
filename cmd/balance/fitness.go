package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/warsheep/config"
	"github.com/pthm-cable/warsheep/game"
	"github.com/pthm-cable/warsheep/round"
)

// Evaluator plays headless autopilot games and scores how close the victory
// rate lands to a target.
type Evaluator struct {
	params     *ParamVector
	baseConfig *config.Config
	seeds      []int64
	rounds     int // battles per seed
	maxTicks   int64
	target     float64 // desired share of victories

	mu   sync.Mutex
	last Summary
}

// Summary aggregates the outcomes of one evaluation across seeds.
type Summary struct {
	Battles     int
	VictoryRate float64
	DrawRate    float64
	MeanLevel   float64 // mean level the battles were fought at
	StdLevel    float64
	MeanSeconds float64 // mean battle length
}

// runResult holds the results from a single seed.
type runResult struct {
	results []round.Result
}

// NewEvaluator creates a new evaluator.
func NewEvaluator(params *ParamVector, baseCfg *config.Config, seeds []int64, rounds int, maxTicks int64, target float64) *Evaluator {
	return &Evaluator{
		params:     params,
		baseConfig: baseCfg,
		seeds:      seeds,
		rounds:     rounds,
		maxTicks:   maxTicks,
		target:     target,
	}
}

// Last returns the summary of the most recent Evaluate call.
func (e *Evaluator) Last() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Fitness is the squared distance of the victory rate from the target plus
// a smaller penalty for draws, which mean neither side could finish the fight.
func (e *Evaluator) Evaluate(x []float64) float64 {
	cfg := e.baseConfig.Clone()
	e.params.ApplyToConfig(cfg, x)

	runs := make([]runResult, len(e.seeds))
	var wg sync.WaitGroup
	for i, seed := range e.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			runs[idx] = e.run(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	summary := Summarize(runs)
	e.mu.Lock()
	e.last = summary
	e.mu.Unlock()

	if summary.Battles == 0 {
		return math.Inf(1)
	}
	miss := summary.VictoryRate - e.target
	return miss*miss + 0.25*summary.DrawRate*summary.DrawRate
}

// run plays one seed until enough battles are decided or the tick cap is hit.
func (e *Evaluator) run(cfg *config.Config, seed int64) runResult {
	var out runResult

	g, err := game.New(cfg, game.Options{Seed: seed})
	if err != nil {
		slog.Error("creating game", "seed", seed, "error", err)
		return out
	}
	defer g.Close()

	pilot := game.NewAutopilot(cfg.Autopilot, seed)
	dt := cfg.Physics.DT
	last := g.Phase()

	for g.Tick() < e.maxTicks && len(out.results) < e.rounds {
		g.Update(dt, pilot.Next(g, dt))
		g.DrainCues()

		if phase := g.Phase(); phase != last {
			last = phase
			if phase == game.PhaseReport {
				if res, ok := g.Result(); ok {
					out.results = append(out.results, res)
				}
			}
		}
	}
	return out
}

// Summarize pools the battle results of all runs.
func Summarize(runs []runResult) Summary {
	var (
		levels  []float64
		seconds []float64
		wins    int
		draws   int
	)
	for _, r := range runs {
		for _, res := range r.results {
			levels = append(levels, float64(res.Level))
			seconds = append(seconds, res.Elapsed)
			switch res.Outcome {
			case round.Victory:
				wins++
			case round.Draw:
				draws++
			}
		}
	}

	n := len(levels)
	if n == 0 {
		return Summary{}
	}
	s := Summary{
		Battles:     n,
		VictoryRate: float64(wins) / float64(n),
		DrawRate:    float64(draws) / float64(n),
		MeanLevel:   stat.Mean(levels, nil),
		MeanSeconds: stat.Mean(seconds, nil),
	}
	if n > 1 {
		s.StdLevel = stat.StdDev(levels, nil)
	}
	return s
}
