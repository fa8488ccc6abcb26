// Package main tunes war sheep combat stats with CMA-ES so that autopilot
// games win a target share of their battles.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/warsheep/config"
)

// EvalRow is one line of balance_log.csv.
type EvalRow struct {
	Eval          int     `csv:"eval"`
	Fitness       float64 `csv:"fitness"`
	Battles       int     `csv:"battles"`
	VictoryRate   float64 `csv:"victory_rate"`
	DrawRate      float64 `csv:"draw_rate"`
	MeanLevel     float64 `csv:"mean_level"`
	StdLevel      float64 `csv:"std_level"`
	MeanSeconds   float64 `csv:"mean_seconds"`
	MachineHealth float64 `csv:"machine_health"`
	MachineDamage float64 `csv:"machine_damage"`
	SheepDamage   float64 `csv:"sheep_damage"`
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 4, "Number of seeds per evaluation")
	rounds := flag.Int("rounds", 8, "Battles per seed")
	maxTicks := flag.Int64("max-ticks", 200000, "Tick cap per seed")
	target := flag.Float64("target", 0.6, "Target victory rate")
	maxEvals := flag.Int("max-evals", 120, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Games log every round; only warnings matter here
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	baseCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	params := NewParamVector()
	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewEvaluator(params, baseCfg, evalSeeds, *rounds, *maxTicks, *target)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.2,
		Population:   popSize,
	}
	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0,
	}

	var (
		rows        []*EvalRow
		bestFitness = 1e9
		bestParams  []float64
		startTime   = time.Now()
	)

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(raw)
			s := evaluator.Last()

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = append(bestParams[:0], raw...)
			}
			rows = append(rows, &EvalRow{
				Eval:          len(rows) + 1,
				Fitness:       fitness,
				Battles:       s.Battles,
				VictoryRate:   s.VictoryRate,
				DrawRate:      s.DrawRate,
				MeanLevel:     s.MeanLevel,
				StdLevel:      s.StdLevel,
				MeanSeconds:   s.MeanSeconds,
				MachineHealth: raw[0],
				MachineDamage: raw[1],
				SheepDamage:   raw[2],
			})

			n := len(rows)
			elapsed := time.Since(startTime)
			remaining := time.Duration(*maxEvals-n) * (elapsed / time.Duration(n))
			fmt.Printf("Eval %d/%d: wins=%.2f draws=%.2f level=%.1f (best=%.4f) | elapsed: %s, ETA: %s\n",
				n, *maxEvals, s.VictoryRate, s.DrawRate, s.MeanLevel, bestFitness,
				formatDuration(elapsed), formatDuration(remaining))
			return fitness
		},
	}

	fmt.Printf("Starting CMA-ES balance with %d parameters, population=%d, max_evals=%d, target=%.2f\n",
		dim, popSize, *maxEvals, *target)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	logPath := filepath.Join(*outputDir, "balance_log.csv")
	if err := writeRows(logPath, rows); err != nil {
		log.Printf("failed to write eval log: %v", err)
	}

	fmt.Printf("\nBalance complete after %d evaluations in %s\n", len(rows), formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.4f\n", bestFitness)
	if bestParams == nil {
		return
	}

	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s (%s): %.4f\n", spec.Name, spec.Path, bestParams[i])
	}

	bestCfg := baseCfg.Clone()
	params.ApplyToConfig(bestCfg, bestParams)
	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}
}

func writeRows(path string, rows []*EvalRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&rows, f)
}
