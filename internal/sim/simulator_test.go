package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/dragsim/internal/dynamo"
)

func defaultLaunch(t *testing.T) dynamo.Params {
	t.Helper()
	p, err := dynamo.NewParams(45*math.Pi/180, 100, 0.1, 1, 9.81)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	return p
}

type recordingObserver struct {
	calls  int
	series dynamo.Series
	err    error
}

func (r *recordingObserver) OnEvaluate(p dynamo.Params, s dynamo.Series, err error) {
	r.calls++
	r.series = s
	r.err = err
}

func TestSimulatorRun(t *testing.T) {
	s := New(DefaultGrid())
	obs := &recordingObserver{}
	s.AddObserver(obs)

	series, err := s.Run(defaultLaunch(t))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if series.Len() >= DefaultSamples {
		t.Errorf("expected trimmed series shorter than %d, got %d", DefaultSamples, series.Len())
	}
	for i, y := range series.Y {
		if y < 0 {
			t.Fatalf("negative height %f at index %d", y, i)
		}
	}

	if obs.calls != 1 {
		t.Errorf("expected 1 observer call, got %d", obs.calls)
	}
	if obs.series.Len() != series.Len() {
		t.Errorf("observer saw %d samples, run returned %d", obs.series.Len(), series.Len())
	}
}

func TestSimulatorRun_InvalidParams(t *testing.T) {
	s := New(DefaultGrid())
	obs := &recordingObserver{}
	s.AddObserver(obs)

	p := defaultLaunch(t)
	p.Drag = 0

	series, err := s.Run(p)
	if !errors.Is(err, dynamo.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if series.Len() != 0 {
		t.Errorf("expected no series, got %d samples", series.Len())
	}
	if !errors.Is(obs.err, dynamo.ErrInvalidParameter) {
		t.Errorf("observer expected ErrInvalidParameter, got %v", obs.err)
	}
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(40, 1000)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if g.Len() != 1000 {
		t.Errorf("expected 1000 samples, got %d", g.Len())
	}
	if g.At(0) != 0 {
		t.Errorf("expected first sample 0, got %f", g.At(0))
	}
	if g.Span() != 40 {
		t.Errorf("expected last sample 40, got %f", g.Span())
	}
	if math.Abs(g.Step()-40.0/999) > 1e-12 {
		t.Errorf("expected step %f, got %f", 40.0/999, g.Step())
	}
	for i := 1; i < g.Len(); i++ {
		if g.At(i) <= g.At(i-1) {
			t.Fatalf("grid not increasing at %d", i)
		}
	}
}

func TestNewGrid_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		span    float64
		samples int
	}{
		{"zero span", 0, 100},
		{"negative span", -1, 100},
		{"NaN span", math.NaN(), 100},
		{"one sample", 10, 1},
		{"zero samples", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.span, tt.samples); !errors.Is(err, dynamo.ErrInvalidGrid) {
				t.Errorf("expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	g := DefaultGrid()
	s := Trim(mustEvaluate(t, defaultLaunch(t), g))
	sum := Summarize(s, g)

	if !sum.Grounded {
		t.Error("expected default launch to reach the ground")
	}
	if sum.Samples != s.Len() {
		t.Errorf("expected %d samples, got %d", s.Len(), sum.Samples)
	}
	if sum.FlightTime <= 0 || sum.FlightTime >= g.Span() {
		t.Errorf("flight time %f outside (0, %f)", sum.FlightTime, g.Span())
	}
	if sum.Range <= 0 || sum.Range >= 1000*math.Cos(math.Pi/4) {
		t.Errorf("range %f outside (0, 707.1)", sum.Range)
	}
	if sum.Apex <= 0 {
		t.Errorf("expected positive apex, got %f", sum.Apex)
	}

	empty := Summarize(dynamo.Series{}, g)
	if empty.Samples != 0 || !empty.Grounded {
		t.Errorf("unexpected summary for empty series: %+v", empty)
	}
}
