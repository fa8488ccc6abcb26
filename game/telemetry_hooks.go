package game

import (
	"log/slog"

	"github.com/pthm-cable/warsheep/round"
)

// flushRoundTelemetry writes the round's stats and timings and resets the collectors.
func (g *Game) flushRoundTelemetry(res round.Result) {
	var health []float64
	query := g.sheepFilter.Query()
	for query.Next() {
		_, h, _ := query.Get()
		health = append(health, h.Fraction())
	}

	stats := g.collector.Flush(res, health)
	stats.LogStats()
	if err := g.output.WriteRound(stats); err != nil {
		slog.Error("writing round stats", "round", g.roundNo, "error", err)
	}

	perf := g.perf.Stats()
	if g.cfg.Telemetry.LogPerf {
		perf.LogStats()
	}
	if err := g.output.WritePerf(perf, g.roundNo); err != nil {
		slog.Error("writing perf stats", "round", g.roundNo, "error", err)
	}
}
