package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/sim"
)

const (
	DefaultAngleDeg = 45
	DefaultSpeed    = 100
	DefaultDrag     = 0.1
	DefaultMass     = 1.0
	DefaultTheme    = "paper"
)

// Slider domains for the launch controls.
const (
	MinAngleDeg = 0
	MaxAngleDeg = 90
	MinSpeed    = 1
	MaxSpeed    = 200
	MinDrag     = 0.01
	MaxDrag     = 1.0
	MinMass     = 0.1
	MaxMass     = 10.0
)

type Config struct {
	Launch  Launch     `yaml:"launch"`
	Gravity float64    `yaml:"gravity"`
	Grid    GridConfig `yaml:"grid"`
	Theme   string     `yaml:"theme"`
}

// Launch holds the control values as the user sets them: whole degrees and
// whole metres per second.
type Launch struct {
	AngleDeg int     `yaml:"angle_deg"`
	Speed    int     `yaml:"speed"`
	Drag     float64 `yaml:"drag"`
	Mass     float64 `yaml:"mass"`
}

type GridConfig struct {
	Span    float64 `yaml:"span"`
	Samples int     `yaml:"samples"`
}

func DefaultLaunch() Launch {
	return Launch{
		AngleDeg: DefaultAngleDeg,
		Speed:    DefaultSpeed,
		Drag:     DefaultDrag,
		Mass:     DefaultMass,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Launch:  DefaultLaunch(),
		Gravity: dynamo.StandardGravity,
		Grid: GridConfig{
			Span:    sim.DefaultSpan,
			Samples: sim.DefaultSamples,
		},
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TimeGrid builds the evaluation grid described by the config.
func (c *Config) TimeGrid() (sim.Grid, error) {
	return sim.NewGrid(c.Grid.Span, c.Grid.Samples)
}

// Params converts the launch into validated engine parameters.
func (l Launch) Params(gravity float64) (dynamo.Params, error) {
	p := l.Raw(gravity)
	if err := p.Validate(); err != nil {
		return dynamo.Params{}, err
	}
	return p, nil
}

// Raw converts the launch without validating it.
func (l Launch) Raw(gravity float64) dynamo.Params {
	return dynamo.Params{
		AngleRad: float64(l.AngleDeg) * math.Pi / 180,
		Speed:    float64(l.Speed),
		Drag:     l.Drag,
		Mass:     l.Mass,
		Gravity:  gravity,
	}
}

// Label is the human-readable legend entry, e.g. "α=45°, v₀=100, h=0.1".
func (l Launch) Label() string {
	return fmt.Sprintf("α=%d°, v₀=%d, h=%s", l.AngleDeg, l.Speed, strconv.FormatFloat(l.Drag, 'g', -1, 64))
}

// Clamp brings every control into its slider domain. NaN values fall back
// to the defaults.
func (l Launch) Clamp() Launch {
	l.AngleDeg = clampInt(l.AngleDeg, MinAngleDeg, MaxAngleDeg)
	l.Speed = clampInt(l.Speed, MinSpeed, MaxSpeed)
	l.Drag = clampFloat(l.Drag, MinDrag, MaxDrag, DefaultDrag)
	l.Mass = clampFloat(l.Mass, MinMass, MaxMass, DefaultMass)
	return l
}

// ParseLaunch reads "angle,speed,drag[,mass]"; mass defaults to 1.
func ParseLaunch(s string) (Launch, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return Launch{}, fmt.Errorf("launch %q: want angle,speed,drag[,mass]", s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	l := DefaultLaunch()
	var err error
	if l.AngleDeg, err = strconv.Atoi(parts[0]); err != nil {
		return Launch{}, fmt.Errorf("launch %q: angle: %w", s, err)
	}
	if l.Speed, err = strconv.Atoi(parts[1]); err != nil {
		return Launch{}, fmt.Errorf("launch %q: speed: %w", s, err)
	}
	if l.Drag, err = strconv.ParseFloat(parts[2], 64); err != nil {
		return Launch{}, fmt.Errorf("launch %q: drag: %w", s, err)
	}
	if len(parts) == 4 {
		if l.Mass, err = strconv.ParseFloat(parts[3], 64); err != nil {
			return Launch{}, fmt.Errorf("launch %q: mass: %w", s, err)
		}
	}
	return l, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(lo, math.Min(hi, v))
}
