package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/joho/godotenv"

	"github.com/pthm-cable/warsheep/camera"
	"github.com/pthm-cable/warsheep/config"
	"github.com/pthm-cable/warsheep/game"
	"github.com/pthm-cable/warsheep/renderer"
	"github.com/pthm-cable/warsheep/telemetry"
	"github.com/pthm-cable/warsheep/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, driven by the autopilot")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	maxRounds := flag.Int("max-rounds", 0, "Stop after N battles in headless mode (0 = unlimited)")
	startLevel := flag.Int("level", 0, "Level of the first battle (0 = use config)")
	trace := flag.Bool("trace", false, "Export round spans over OTLP/HTTP (reads OTEL_* env vars)")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// .env is optional; it usually carries OTEL_EXPORTER_OTLP_* settings
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	ctx := context.Background()
	if *trace {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			slog.Error("failed to set up tracing", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				slog.Error("failed to shut down tracing", "error", err)
			}
		}()
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:       rngSeed,
		OutputDir:  *outputDir,
		StartLevel: *startLevel,
		Context:    ctx,
	}

	g, err := game.New(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	if *headless {
		runHeadless(g, rngSeed, *maxTicks, *maxRounds)
		return
	}
	runWindow(g, *maxTicks)
}

// runHeadless plays with the autopilot as fast as possible.
func runHeadless(g *game.Game, seed int64, maxTicks, maxRounds int) {
	cfg := g.Config()
	pilot := game.NewAutopilot(cfg.Autopilot, seed)
	dt := cfg.Physics.DT

	slog.Info("starting headless run",
		"seed", seed,
		"max_ticks", maxTicks,
		"max_rounds", maxRounds,
	)

	for {
		g.Update(dt, pilot.Next(g, dt))
		g.DrainCues()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
		if maxRounds > 0 && g.RoundsPlayed() >= maxRounds && g.Phase() == game.PhaseReport {
			slog.Info("max rounds reached", "rounds", g.RoundsPlayed(), "level", g.Level())
			return
		}
	}
}

// runWindow runs the interactive game. Simulation steps at a fixed dt; rendering
// runs at the display rate.
func runWindow(g *game.Game, maxTicks int) {
	cfg := g.Config()
	screenW, screenH := int32(cfg.Screen.Width), int32(cfg.Screen.Height)

	rl.InitWindow(screenW, screenH, "War Sheep")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	cam := camera.New(float32(screenW), float32(screenH), float32(cfg.Screen.PixelsPerUnit))
	fitCamera(cam, g)
	scene := renderer.NewSceneRenderer(cfg.Sheep.Scale)
	hud := ui.NewHUD()
	report := ui.NewReportScreen(520, 300)
	perfPanel := ui.NewPerfPanel(screenW-250, 54)
	showPerf := false

	var (
		views       []game.CreatureView
		accumulator float64
		pending     game.Commands
		lastPhase   = g.Phase()
	)
	dt := cfg.Physics.DT

	for !rl.WindowShouldClose() {
		g.Perf().RecordFrame()
		in := ui.ReadInput()
		in.ApplyCamera(cam)
		if rl.IsKeyPressed(rl.KeyP) {
			showPerf = !showPerf
		}

		// Edge-triggered input is held until the next simulation step consumes it
		cmds := in.Commands(cam)
		pending.Pointer, pending.HasPointer = cmds.Pointer, cmds.HasPointer
		pending.Grab = pending.Grab || cmds.Grab
		pending.Release = pending.Release || cmds.Release
		pending.StartBattle = pending.StartBattle || cmds.StartBattle
		pending.Confirm = pending.Confirm || cmds.Confirm

		accumulator += float64(rl.GetFrameTime())
		for accumulator >= dt {
			accumulator -= dt
			g.Update(dt, pending)
			pending = game.Commands{Pointer: pending.Pointer, HasPointer: pending.HasPointer}
		}
		for _, c := range g.DrainCues() {
			slog.Debug("cue", "cue", c)
		}
		if g.Phase() != lastPhase {
			lastPhase = g.Phase()
			fitCamera(cam, g)
		}

		rl.BeginDrawing()
		scene.DrawField(cam, g.Arena())
		views = g.Creatures(views[:0])
		scene.DrawCreatures(cam, views)

		sheep, machines, levels := 0, 0, 0
		for _, v := range views {
			if v.Kind == game.KindSheep {
				sheep++
				levels += v.Levels
			} else {
				machines++
			}
		}
		timer := g.RoundTimer()
		hud.Draw(ui.HUDData{
			Phase:       g.Phase().String(),
			Level:       g.Level(),
			Round:       g.RoundsPlayed(),
			Flock:       sheep,
			FlockLevels: levels,
			WarMachines: machines,
			Remaining:   timer.Remaining(),
			Duration:    timer.Duration,
			FPS:         rl.GetFPS(),
		})
		if showPerf {
			perfPanel.Draw(g.Perf().Stats())
		}

		switch g.Phase() {
		case game.PhaseHerding:
			if ui.StartButton(screenW) {
				pending.StartBattle = true
			}
			hud.DrawControls(screenH, "Drag a sheep onto another to merge | [1] Fight | Right-drag pan | Wheel zoom | [P] Perf")
		case game.PhaseReport:
			if res, ok := g.Result(); ok && report.Draw(res, screenW, screenH) {
				pending.Confirm = true
			}
		}
		rl.EndDrawing()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}

func fitCamera(cam *camera.Camera, g *game.Game) {
	a := g.Arena()
	cam.Fit(float32(a.MinX), float32(a.MinY), float32(a.MaxX), float32(a.MaxY), 40)
}
