package sim

import (
	"fmt"

	"github.com/san-kum/dragsim/internal/dynamo"
)

const (
	DefaultSpan    = 40.0
	DefaultSamples = 1000
)

// Grid is an evenly spaced set of sample times starting at zero.
type Grid struct {
	times []float64
}

// NewGrid samples [0, span] at the given count, endpoints included.
func NewGrid(span float64, samples int) (Grid, error) {
	if !(span > 0) || !dynamo.IsFinite(span) {
		return Grid{}, fmt.Errorf("%w: span must be positive, got %v", dynamo.ErrInvalidGrid, span)
	}
	if samples < 2 {
		return Grid{}, fmt.Errorf("%w: need at least 2 samples, got %d", dynamo.ErrInvalidGrid, samples)
	}
	times := make([]float64, samples)
	last := float64(samples - 1)
	for i := range times {
		times[i] = span * float64(i) / last
	}
	return Grid{times: times}, nil
}

// DefaultGrid is 0..40 s at 1000 samples.
func DefaultGrid() Grid {
	g, _ := NewGrid(DefaultSpan, DefaultSamples)
	return g
}

func (g Grid) Len() int { return len(g.times) }

// At returns the i-th sample time.
func (g Grid) At(i int) float64 { return g.times[i] }

// Span is the last sample time.
func (g Grid) Span() float64 {
	if len(g.times) == 0 {
		return 0
	}
	return g.times[len(g.times)-1]
}

// Step is the spacing between consecutive samples.
func (g Grid) Step() float64 {
	if len(g.times) < 2 {
		return 0
	}
	return g.times[1] - g.times[0]
}

// Observer is notified after every evaluation a Simulator performs.
type Observer interface {
	OnEvaluate(p dynamo.Params, s dynamo.Series, err error)
}

// Summary describes one trimmed flight.
type Summary struct {
	Samples     int
	FlightTime  float64
	Range       float64
	Apex        float64
	ImpactSpeed float64
	// Grounded is false when the flight was still airborne at the end of
	// the grid.
	Grounded bool
}
