// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen          ScreenConfig    `yaml:"screen"`
	Physics         PhysicsConfig   `yaml:"physics"`
	Pen             BoundsConfig    `yaml:"pen"`
	Battlefield     BoundsConfig    `yaml:"battlefield"`
	Sheep           SheepConfig     `yaml:"sheep"`
	SheepStats      StatsConfig     `yaml:"sheep_stats"`
	WarMachineStats StatsConfig     `yaml:"war_machine_stats"`
	Hostiles        HostilesConfig  `yaml:"hostiles"`
	Reward          RewardConfig    `yaml:"reward"`
	Round           RoundConfig     `yaml:"round"`
	Breeding        BreedingConfig  `yaml:"breeding"`
	Animation       AnimationConfig `yaml:"animation"`
	Autopilot       AutopilotConfig `yaml:"autopilot"`
	Telemetry       TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	TargetFPS     int     `yaml:"target_fps"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"` // world unit -> screen pixel scale
}

// PhysicsConfig holds simulation stepping parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per tick
}

// BoundsConfig is an axis-aligned rectangle in world units.
type BoundsConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// SheepConfig holds flock creation and herding behaviour parameters.
type SheepConfig struct {
	InitialCount     int        `yaml:"initial_count"`
	Scale            float64    `yaml:"scale"`              // visual size, also the breeding collision distance
	WhiteChance      float64    `yaml:"white_chance"`       // probability an initial sheep is light coloured
	WhiteColor       [2]float64 `yaml:"white_color"`        // color range for light sheep
	DarkColor        [2]float64 `yaml:"dark_color"`         // color range for dark sheep
	WanderSeconds    float64    `yaml:"wander_seconds"`     // time spent walking in one direction
	IdleSeconds      float64    `yaml:"idle_seconds"`       // time spent standing still
	WanderDeviance   float64    `yaml:"wander_deviance"`    // +- fraction applied to both timers
	WanderSpeedScale float64    `yaml:"wander_speed_scale"` // fraction of derived speed used while wandering
}

// StatsConfig holds the base constants for derived creature stats.
type StatsConfig struct {
	Health   float64 `yaml:"health"`
	Speed    float64 `yaml:"speed"`
	Damage   float64 `yaml:"damage"`
	Range    float64 `yaml:"range"`
	Spotting float64 `yaml:"spotting"`
	MinRange float64 `yaml:"min_range"` // floor for the attack range formula
}

// HostilesConfig controls how many war machines spawn per level and how strong they are.
type HostilesConfig struct {
	BaseCount     int `yaml:"base_count"`
	CountEvery    int `yaml:"count_every"` // one extra war machine every N levels
	BasePower     int `yaml:"base_power"`  // level sum of a level 1 war machine
	PowerPerLevel int `yaml:"power_per_level"`
}

// RewardConfig controls how many sheep a victory grants.
type RewardConfig struct {
	Base     int `yaml:"base"`
	PerLevel int `yaml:"per_level"`
}

// RoundConfig holds battle round parameters.
type RoundConfig struct {
	Seconds    float64 `yaml:"seconds"`     // round length before a draw is called
	StartLevel int     `yaml:"start_level"` // level of a fresh game
}

// BreedingConfig holds sheep combination parameters.
type BreedingConfig struct {
	LevelRule   string  `yaml:"level_rule"` // "sum" or "inherit"
	ColorJitter float64 `yaml:"color_jitter"`
	MinColor    float64 `yaml:"min_color"`
}

// ClipConfig describes one animation clip.
type ClipConfig struct {
	Frames    int     `yaml:"frames"`
	FrameTime float64 `yaml:"frame_time"`
	Repeating bool    `yaml:"repeating"`
}

// AnimationConfig holds the war machine animation clips.
type AnimationConfig struct {
	Idling    ClipConfig `yaml:"idling"`
	Walking   ClipConfig `yaml:"walking"`
	Attacking ClipConfig `yaml:"attacking"`
	Dying     ClipConfig `yaml:"dying"`
}

// AutopilotConfig drives the game without a player (headless runs and tools).
type AutopilotConfig struct {
	HerdingSeconds float64 `yaml:"herding_seconds"` // time spent in the pen before starting a battle
	BreedInterval  float64 `yaml:"breed_interval"`  // seconds between drag-and-drop merges
	BreedsPerRound int     `yaml:"breeds_per_round"`
	ReportSeconds  float64 `yaml:"report_seconds"` // time on the report screen before confirming
}

// TelemetryConfig holds logging and output parameters.
type TelemetryConfig struct {
	PerfWindow int  `yaml:"perf_window"` // ticks averaged by the perf collector
	LogPerf    bool `yaml:"log_perf"`    // log per-phase timings at the end of each round
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TicksPerSecond float64 // 1 / Physics.DT
	RoundTicks     int     // Round.Seconds / Physics.DT
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

// Clone returns a deep copy, used by tools that mutate parameters per run.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Physics.DT <= 0 {
		errs = append(errs, fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT))
	}
	if c.Round.Seconds <= 0 {
		errs = append(errs, fmt.Errorf("round.seconds must be positive, got %v", c.Round.Seconds))
	}
	if c.Round.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("round.start_level must be at least 1, got %d", c.Round.StartLevel))
	}
	if c.Sheep.Scale <= 0 {
		errs = append(errs, fmt.Errorf("sheep.scale must be positive, got %v", c.Sheep.Scale))
	}
	for _, b := range []struct {
		name string
		BoundsConfig
	}{{"pen", c.Pen}, {"battlefield", c.Battlefield}} {
		if b.MinX >= b.MaxX || b.MinY >= b.MaxY {
			errs = append(errs, fmt.Errorf("%s bounds are empty", b.name))
		}
	}
	for _, s := range []struct {
		name string
		StatsConfig
	}{{"sheep_stats", c.SheepStats}, {"war_machine_stats", c.WarMachineStats}} {
		if s.Health <= 0 {
			errs = append(errs, fmt.Errorf("%s.health must be positive, got %v", s.name, s.Health))
		}
	}
	if c.Hostiles.BasePower < 1 {
		errs = append(errs, fmt.Errorf("hostiles.base_power must be at least 1, got %d", c.Hostiles.BasePower))
	}
	switch c.Breeding.LevelRule {
	case "sum", "inherit":
	default:
		errs = append(errs, fmt.Errorf("breeding.level_rule must be \"sum\" or \"inherit\", got %q", c.Breeding.LevelRule))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Physics.DT > 0 {
		c.Derived.TicksPerSecond = 1.0 / c.Physics.DT
		c.Derived.RoundTicks = int(c.Round.Seconds/c.Physics.DT + 0.5)
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
