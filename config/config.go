// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Economy   EconomyConfig   `yaml:"economy"`
	Ships     ShipsConfig     `yaml:"ships"`
	Ocean     OceanConfig     `yaml:"ocean"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Server    ServerConfig    `yaml:"server"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// EconomyConfig holds prices, starting balances and the income period.
type EconomyConfig struct {
	StartingMoney       int64   `yaml:"starting_money"`
	StartingReputation  int     `yaml:"starting_reputation"`
	MaxReputation       int     `yaml:"max_reputation"`
	BuyPrice            int64   `yaml:"buy_price"`
	UpgradePrice        int64   `yaml:"upgrade_price"`
	AdvertisePrice      int64   `yaml:"advertise_price"`
	UpgradeReputation   int     `yaml:"upgrade_reputation"`   // Reputation gained per upgrade
	AdvertiseReputation int     `yaml:"advertise_reputation"` // Reputation gained per advert
	IncomePeriod        float64 `yaml:"income_period"`        // Seconds between income ticks
}

// Range is an inclusive integer range sampled uniformly.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Sample draws a uniform integer in [Min, Max].
func (r Range) Sample(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// ShipsConfig holds ship generation parameters.
type ShipsConfig struct {
	InitialPassengers   Range   `yaml:"initial_passengers"`
	UpgradePassengers   Range   `yaml:"upgrade_passengers"`
	AdvertisePassengers Range   `yaml:"advertise_passengers"`
	Saturation          float64 `yaml:"saturation"` // HSL saturation of the livery (0-1)
	Lightness           float64 `yaml:"lightness"`  // HSL lightness of the livery (0-1)

	// Buy-button placement as fractions of the surface
	SpawnMinX float32 `yaml:"spawn_min_x"`
	SpawnMaxX float32 `yaml:"spawn_max_x"`
	SpawnMinY float32 `yaml:"spawn_min_y"`
	SpawnMaxY float32 `yaml:"spawn_max_y"`

	// Clicks below this fraction of the surface height buy a ship
	OceanLine float32 `yaml:"ocean_line"`
}

// OceanConfig holds background rendering parameters.
type OceanConfig struct {
	TopColor       string  `yaml:"top_color"`
	BottomColor    string  `yaml:"bottom_color"`
	WaveSpacing    float32 `yaml:"wave_spacing"`    // Vertical gap between wave strokes
	WaveStep       float32 `yaml:"wave_step"`       // Horizontal sampling step
	WaveAmplitude  float32 `yaml:"wave_amplitude"`  // Per-point sine amplitude
	WaveLength     float32 `yaml:"wave_length"`     // x divisor inside the sine
	SwellAmplitude float32 `yaml:"swell_amplitude"` // Global wave offset amplitude
	SunRadius      float32 `yaml:"sun_radius"`
	SunInsetX      float32 `yaml:"sun_inset_x"` // Distance from the right edge
	SunY           float32 `yaml:"sun_y"`
	SmokePuffs     int     `yaml:"smoke_puffs"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	AutoplayInterval    float64 `yaml:"autoplay_interval"` // Seconds between autopilot decisions
}

// ServerConfig holds the status feed settings.
type ServerConfig struct {
	Addr         string  `yaml:"addr"`
	CommandQueue int     `yaml:"command_queue"`
	PingInterval float64 `yaml:"ping_interval"` // Seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32    float32
	ScreenH32    float32
	FrameDT      time.Duration // 1 / TargetFPS
	IncomePeriod time.Duration
	StatsWindow  time.Duration
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

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults. Panics if they fail to parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
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
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the invariants the simulation relies on.
func (c *Config) Validate() error {
	var errs []error
	e := c.Economy
	if e.StartingMoney < 0 {
		errs = append(errs, errors.New("economy.starting_money must be >= 0"))
	}
	if e.BuyPrice <= 0 || e.UpgradePrice <= 0 || e.AdvertisePrice <= 0 {
		errs = append(errs, errors.New("economy prices must be > 0"))
	}
	if e.MaxReputation <= 0 {
		errs = append(errs, errors.New("economy.max_reputation must be > 0"))
	}
	if e.StartingReputation < 0 || e.StartingReputation > e.MaxReputation {
		errs = append(errs, fmt.Errorf("economy.starting_reputation must be in [0,%d]", e.MaxReputation))
	}
	if e.UpgradeReputation < 0 || e.AdvertiseReputation < 0 {
		errs = append(errs, errors.New("economy reputation gains must be >= 0"))
	}
	if e.IncomePeriod <= 0 {
		errs = append(errs, errors.New("economy.income_period must be > 0"))
	}

	s := c.Ships
	for name, r := range map[string]Range{
		"initial_passengers":   s.InitialPassengers,
		"upgrade_passengers":   s.UpgradePassengers,
		"advertise_passengers": s.AdvertisePassengers,
	} {
		if r.Min < 0 || r.Max < r.Min {
			errs = append(errs, fmt.Errorf("ships.%s must satisfy 0 <= min <= max", name))
		}
	}
	// Advertising must strictly grow every ship.
	if s.AdvertisePassengers.Min < 1 {
		errs = append(errs, errors.New("ships.advertise_passengers.min must be >= 1"))
	}

	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, errors.New("screen.target_fps must be > 0"))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.FrameDT = time.Second / time.Duration(c.Screen.TargetFPS)
	c.Derived.IncomePeriod = time.Duration(c.Economy.IncomePeriod * float64(time.Second))
	c.Derived.StatsWindow = time.Duration(c.Telemetry.StatsWindow * float64(time.Second))
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
