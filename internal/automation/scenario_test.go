package automation

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/experiment"
)

const ladder = `
name: drag ladder
description: same launch, rising drag
launches:
  - preset: default
  - preset: default
    drag: 0.3
  - angle_deg: 0
    speed: 50
`

func session(t *testing.T) *experiment.Session {
	t.Helper()
	s, err := experiment.NewSession(config.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, ladder))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "drag ladder" || len(sc.Steps) != 3 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	tests := []struct {
		step int
		want config.Launch
	}{
		{0, config.Launch{AngleDeg: 45, Speed: 100, Drag: 0.1, Mass: 1}},
		{1, config.Launch{AngleDeg: 45, Speed: 100, Drag: 0.3, Mass: 1}},
		{2, config.Launch{AngleDeg: 0, Speed: 50, Drag: 0.1, Mass: 1}},
	}
	for _, tt := range tests {
		got, err := sc.Steps[tt.step].Launch()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("step %d: expected %+v, got %+v", tt.step, tt.want, got)
		}
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); err == nil {
		t.Error("expected error for scenario without launches")
	}
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, ladder))
	if err != nil {
		t.Fatal(err)
	}
	s := session(t)

	sums, err := RunScenario(context.Background(), sc, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 3 || s.Store().Len() != 3 {
		t.Fatalf("expected 3 records, got %d summaries and %d records", len(sums), s.Store().Len())
	}
	if sums[1].Range >= sums[0].Range {
		t.Errorf("more drag should shorten range: %.1f vs %.1f", sums[1].Range, sums[0].Range)
	}
}

func TestRunScenarioStopsOnError(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Preset: "default"}, {Drag: -1}, {Preset: "lob"}}}
	s := session(t)

	sums, err := RunScenario(context.Background(), sc, s)
	if !errors.Is(err, dynamo.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if len(sums) != 1 || s.Store().Len() != 1 {
		t.Errorf("expected one completed step, got %d", len(sums))
	}
}

func TestRunScenarioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunScenario(ctx, &Scenario{Steps: []ScenarioStep{{Preset: "default"}}}, session(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunSweep(t *testing.T) {
	tests := []struct {
		name    string
		sweep   ParameterSweep
		want    int
		wantErr bool
	}{
		{"drag", ParameterSweep{Base: config.DefaultLaunch(), Param: "drag", Min: 0.05, Max: 0.5, NumSteps: 4}, 4, false},
		{"angle", ParameterSweep{Base: config.DefaultLaunch(), Param: "angle", Min: 15, Max: 75, NumSteps: 5}, 5, false},
		{"single", ParameterSweep{Base: config.DefaultLaunch(), Param: "mass", Min: 2, Max: 9, NumSteps: 1}, 1, false},
		{"unknown param", ParameterSweep{Base: config.DefaultLaunch(), Param: "wind", Min: 0, Max: 1, NumSteps: 2}, 0, true},
		{"no steps", ParameterSweep{Base: config.DefaultLaunch(), Param: "drag", NumSteps: 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session(t)
			results, err := RunSweep(context.Background(), &tt.sweep, s)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(results) != tt.want {
				t.Fatalf("expected %d results, got %d", tt.want, len(results))
			}
			if math.Abs(results[0].Value-tt.sweep.Min) > 1e-9 {
				t.Errorf("expected first value %v, got %v", tt.sweep.Min, results[0].Value)
			}
			if tt.want > 1 && math.Abs(results[len(results)-1].Value-tt.sweep.Max) > 1e-9 {
				t.Errorf("expected last value %v, got %v", tt.sweep.Max, results[len(results)-1].Value)
			}
		})
	}
}
