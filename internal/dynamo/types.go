package dynamo

import (
	"fmt"
	"math"
)

// StandardGravity is the fixed gravitational acceleration in m/s².
const StandardGravity = 9.81

// Params describes one launch. Angles are in radians.
type Params struct {
	AngleRad float64
	Speed    float64
	Drag     float64
	Mass     float64
	Gravity  float64
}

// NewParams builds a validated launch.
func NewParams(angleRad, speed, drag, mass, gravity float64) (Params, error) {
	p := Params{
		AngleRad: angleRad,
		Speed:    speed,
		Drag:     drag,
		Mass:     mass,
		Gravity:  gravity,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate rejects launches the closed-form solution cannot evaluate.
func (p Params) Validate() error {
	if !IsFinite(p.AngleRad) {
		return fmt.Errorf("%w: angle must be finite, got %v", ErrInvalidParameter, p.AngleRad)
	}
	checks := []struct {
		name  string
		value float64
	}{
		{"drag", p.Drag},
		{"mass", p.Mass},
		{"speed", p.Speed},
		{"gravity", p.Gravity},
	}
	for _, c := range checks {
		if !(c.value > 0) || !IsFinite(c.value) {
			return invalidParam(c.name, c.value)
		}
	}
	return nil
}

// DecayRate is h/m, the inverse time constant of the velocity decay.
func (p Params) DecayRate() float64 {
	return p.Drag / p.Mass
}

// Series holds the evaluated samples of one launch. All five slices share
// length and index correspondence.
type Series struct {
	T     []float64
	X     []float64
	Y     []float64
	Speed []float64
	Accel []float64
}

func NewSeries(n int) Series {
	return Series{
		T:     make([]float64, n),
		X:     make([]float64, n),
		Y:     make([]float64, n),
		Speed: make([]float64, n),
		Accel: make([]float64, n),
	}
}

func (s Series) Len() int {
	return len(s.T)
}

// Head returns the first n samples. The result shares storage with s but
// its capacity is capped, so appends never write into s.
func (s Series) Head(n int) Series {
	if n > s.Len() {
		n = s.Len()
	}
	if n < 0 {
		n = 0
	}
	return Series{
		T:     s.T[:n:n],
		X:     s.X[:n:n],
		Y:     s.Y[:n:n],
		Speed: s.Speed[:n:n],
		Accel: s.Accel[:n:n],
	}
}

func (s Series) Clone() Series {
	c := NewSeries(s.Len())
	copy(c.T, s.T)
	copy(c.X, s.X)
	copy(c.Y, s.Y)
	copy(c.Speed, s.Speed)
	copy(c.Accel, s.Accel)
	return c
}

// Fields returns the sample slices keyed by name, in a fixed order.
func (s Series) Fields() []Field {
	return []Field{
		{"t", s.T},
		{"x", s.X},
		{"y", s.Y},
		{"speed", s.Speed},
		{"accel", s.Accel},
	}
}

// Field is a named view on one slice of a Series.
type Field struct {
	Name   string
	Values []float64
}

// CheckFinite reports the first NaN or Inf sample as a *ComputationError.
func (s Series) CheckFinite() error {
	for _, f := range s.Fields() {
		for i, v := range f.Values {
			if !IsFinite(v) {
				t := math.NaN()
				if i < len(s.T) {
					t = s.T[i]
				}
				return &ComputationError{Field: f.Name, Index: i, Time: t, Value: v}
			}
		}
	}
	return nil
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
