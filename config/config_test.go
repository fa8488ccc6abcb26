package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Sheep.InitialCount != 10 {
		t.Errorf("Sheep.InitialCount = %d, want 10", cfg.Sheep.InitialCount)
	}
	if cfg.Breeding.LevelRule != "sum" {
		t.Errorf("Breeding.LevelRule = %q, want sum", cfg.Breeding.LevelRule)
	}
	if math.Abs(cfg.Derived.TicksPerSecond-60) > 0.01 {
		t.Errorf("Derived.TicksPerSecond = %v, want ~60", cfg.Derived.TicksPerSecond)
	}
	if cfg.Derived.RoundTicks != 3600 {
		t.Errorf("Derived.RoundTicks = %d, want 3600", cfg.Derived.RoundTicks)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("round:\n  seconds: 5\nphysics:\n  dt: 0.1\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Round.Seconds != 5 {
		t.Errorf("Round.Seconds = %v, want 5", cfg.Round.Seconds)
	}
	if cfg.Derived.RoundTicks != 50 {
		t.Errorf("Derived.RoundTicks = %d, want 50", cfg.Derived.RoundTicks)
	}
	// Untouched sections keep their defaults
	if cfg.SheepStats.Health != 20 {
		t.Errorf("SheepStats.Health = %v, want 20", cfg.SheepStats.Health)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero dt", func(c *Config) { c.Physics.DT = 0 }},
		{"zero round", func(c *Config) { c.Round.Seconds = 0 }},
		{"start level", func(c *Config) { c.Round.StartLevel = 0 }},
		{"empty pen", func(c *Config) { c.Pen.MaxX = c.Pen.MinX }},
		{"sheep health", func(c *Config) { c.SheepStats.Health = 0 }},
		{"base power", func(c *Config) { c.Hostiles.BasePower = 0 }},
		{"level rule", func(c *Config) { c.Breeding.LevelRule = "random" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Defaults()
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Round.Seconds = 42

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Round.Seconds != 42 {
		t.Errorf("Round.Seconds = %v, want 42", loaded.Round.Seconds)
	}
}

func TestValidateErrorOrderIsStable(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Pen.MaxX = cfg.Pen.MinX
	cfg.Battlefield.MaxY = cfg.Battlefield.MinY
	cfg.SheepStats.Health = 0
	cfg.WarMachineStats.Health = 0

	want := cfg.Validate().Error()
	for _, prefix := range []string{"pen", "battlefield", "sheep_stats", "war_machine_stats"} {
		if !strings.Contains(want, prefix) {
			t.Fatalf("Validate() = %q, want it to mention %s", want, prefix)
		}
	}
	if strings.Index(want, "pen bounds") > strings.Index(want, "battlefield bounds") ||
		strings.Index(want, "sheep_stats") > strings.Index(want, "war_machine_stats") {
		t.Errorf("Validate() = %q, want pen before battlefield and sheep before war machines", want)
	}
	for i := 0; i < 20; i++ {
		if got := cfg.Validate().Error(); got != want {
			t.Fatalf("Validate() run %d = %q, want %q", i, got, want)
		}
	}
}
