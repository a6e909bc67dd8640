package automation

import (
	"context"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/experiment"
	"github.com/san-kum/dragsim/internal/sim"
)

// Scenario is a scripted list of launches added to one session in order.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"launches"`
}

// ScenarioStep names a preset, gives a launch inline, or both. Inline
// fields that are set override the preset.
type ScenarioStep struct {
	Preset   string  `yaml:"preset,omitempty"`
	AngleDeg *int    `yaml:"angle_deg,omitempty"`
	Speed    *int    `yaml:"speed,omitempty"`
	Drag     float64 `yaml:"drag,omitempty"`
	Mass     float64 `yaml:"mass,omitempty"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s: no launches", path)
	}
	return &scenario, nil
}

// Launch resolves the step against the presets and the defaults.
func (s ScenarioStep) Launch() (config.Launch, error) {
	l := config.DefaultLaunch()
	if s.Preset != "" {
		p := config.GetPreset(s.Preset)
		if p == nil {
			return config.Launch{}, fmt.Errorf("unknown preset: %s", s.Preset)
		}
		l = *p
	}
	if s.AngleDeg != nil {
		l.AngleDeg = *s.AngleDeg
	}
	if s.Speed != nil {
		l.Speed = *s.Speed
	}
	if s.Drag != 0 {
		l.Drag = s.Drag
	}
	if s.Mass != 0 {
		l.Mass = s.Mass
	}
	return l, nil
}

// RunScenario adds every step to the session and returns one summary per
// step. It stops at the first failing step.
func RunScenario(ctx context.Context, scenario *Scenario, s *experiment.Session) ([]sim.Summary, error) {
	results := make([]sim.Summary, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		l, err := step.Launch()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		sum, err := s.AddLaunch(l)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, sum)
	}

	return results, nil
}

// ParameterSweep varies one launch control across evenly spaced values.
type ParameterSweep struct {
	Base     config.Launch
	Param    string
	Min, Max float64
	NumSteps int
}

// SweepResult pairs one swept value with the flight it produced.
type SweepResult struct {
	Value   float64
	Launch  config.Launch
	Summary sim.Summary
}

// Launches returns the swept launches without evaluating them.
func (sw *ParameterSweep) Launches() ([]config.Launch, error) {
	if sw.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sw.NumSteps)
	}

	step := 0.0
	if sw.NumSteps > 1 {
		step = (sw.Max - sw.Min) / float64(sw.NumSteps-1)
	}

	out := make([]config.Launch, sw.NumSteps)
	for i := range out {
		v := sw.Min + float64(i)*step
		l := sw.Base
		switch sw.Param {
		case "angle":
			l.AngleDeg = int(math.Round(v))
		case "speed":
			l.Speed = int(math.Round(v))
		case "drag":
			l.Drag = roundTo(v, 1e4)
		case "mass":
			l.Mass = roundTo(v, 1e4)
		default:
			return nil, fmt.Errorf("cannot sweep %q (want angle, speed, drag or mass)", sw.Param)
		}
		out[i] = l
	}
	return out, nil
}

// RunSweep adds one record per swept value to the session.
func RunSweep(ctx context.Context, sw *ParameterSweep, s *experiment.Session) ([]SweepResult, error) {
	launches, err := sw.Launches()
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, len(launches))
	for i, l := range launches {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		sum, err := s.AddLaunch(l)
		if err != nil {
			return results, err
		}
		results = append(results, SweepResult{
			Value:   sweepValue(sw, i),
			Launch:  l,
			Summary: sum,
		})
	}
	return results, nil
}

// roundTo keeps swept floats on a decimal grid so labels stay short.
func roundTo(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}

func sweepValue(sw *ParameterSweep, i int) float64 {
	if sw.NumSteps < 2 {
		return sw.Min
	}
	return sw.Min + float64(i)*(sw.Max-sw.Min)/float64(sw.NumSteps-1)
}
