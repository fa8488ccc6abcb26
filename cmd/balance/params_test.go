package main

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/pthm-cable/warsheep/config"
	"github.com/pthm-cable/warsheep/round"
)

func TestNormalizeRoundtrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: roundtrip %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	pv.ApplyToConfig(cfg, []float64{1000, -5, 0.2})

	got := pv.ExtractFromConfig(cfg)
	want := []float64{pv.Specs[0].Max, pv.Specs[1].Min, 0.2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	runs := []runResult{
		{results: []round.Result{
			{Outcome: round.Victory, Level: 1, Elapsed: 10},
			{Outcome: round.Victory, Level: 2, Elapsed: 20},
		}},
		{results: []round.Result{
			{Outcome: round.Draw, Level: 3, Elapsed: 60},
			{Outcome: round.GameOver, Level: 2, Elapsed: 30},
		}},
	}
	s := Summarize(runs)
	if s.Battles != 4 {
		t.Fatalf("Battles = %d, want 4", s.Battles)
	}
	if s.VictoryRate != 0.5 || s.DrawRate != 0.25 {
		t.Errorf("rates = %v/%v, want 0.5/0.25", s.VictoryRate, s.DrawRate)
	}
	if s.MeanLevel != 2 || s.MeanSeconds != 30 {
		t.Errorf("means = %v/%v, want 2/30", s.MeanLevel, s.MeanSeconds)
	}

	if empty := Summarize(nil); empty.Battles != 0 || empty.VictoryRate != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero", empty)
	}
}

func TestRunLogsGameCreationFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Breeding.LevelRule = "average"

	e := NewEvaluator(NewParamVector(), cfg, []int64{7}, 1, 100, 0.5)
	if out := e.run(cfg, 7); len(out.results) != 0 {
		t.Errorf("results = %d, want 0", len(out.results))
	}
	logged := buf.String()
	if !strings.Contains(logged, `"msg":"creating game"`) || !strings.Contains(logged, `"seed":7`) {
		t.Errorf("log = %q, want a creating game error with the seed", logged)
	}
}
