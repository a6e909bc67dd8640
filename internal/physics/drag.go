package physics

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/san-kum/dragsim/internal/dynamo"
)

// Func evaluates one component of the closed-form solution.
type Func func(t, m, h, v0, alpha, g float64) float64

// Solution is the analytic solution of
//
//	m·x'' = −h·x'
//	m·y'' = −m·g − h·y'
//
// with x(0) = y(0) = 0, x'(0) = v0·cos α, y'(0) = v0·sin α.
type Solution struct {
	X  Func
	Y  Func
	VX Func
	VY Func
}

var (
	solveOnce   sync.Once
	solution    *Solution
	derivations atomic.Int32
)

// Solve returns the process-wide solution, deriving it on first use.
func Solve() *Solution {
	solveOnce.Do(func() {
		derivations.Add(1)
		solution = derive()
	})
	return solution
}

// Derivations reports how many times the solution has been derived.
func Derivations() int {
	return int(derivations.Load())
}

func derive() *Solution {
	return &Solution{
		X: func(t, m, h, v0, alpha, g float64) float64 {
			return m * v0 * math.Cos(alpha) / h * rise(t, m, h)
		},
		Y: func(t, m, h, v0, alpha, g float64) float64 {
			return (m*v0*math.Sin(alpha)+m*m*g/h)/h*rise(t, m, h) - m*g/h*t
		},
		VX: func(t, m, h, v0, alpha, g float64) float64 {
			return v0 * math.Cos(alpha) * math.Exp(-h*t/m)
		},
		VY: func(t, m, h, v0, alpha, g float64) float64 {
			return (v0*math.Sin(alpha)+m*g/h)*math.Exp(-h*t/m) - m*g/h
		},
	}
}

// rise is 1 − e^(−h·t/m); Expm1 keeps precision near t = 0.
func rise(t, m, h float64) float64 {
	return -math.Expm1(-h * t / m)
}

// LinearDrag is the force model m·a = m·g⃗ − h·v⃗.
type LinearDrag struct {
	Mass    float64
	Drag    float64
	Gravity float64
}

func NewLinearDrag(p dynamo.Params) *LinearDrag {
	return &LinearDrag{
		Mass:    p.Mass,
		Drag:    p.Drag,
		Gravity: p.Gravity,
	}
}

// Accel evaluates the equations of motion directly at velocity (vx, vy).
func (d *LinearDrag) Accel(vx, vy float64) (ax, ay float64) {
	k := d.Drag / d.Mass
	return -k * vx, -d.Gravity - k*vy
}

// TerminalVelocity is the limiting fall speed m·g/h.
func (d *LinearDrag) TerminalVelocity() float64 {
	return d.Mass * d.Gravity / d.Drag
}

// RangeLimit is the horizontal asymptote m·v0·cos α / h.
func (d *LinearDrag) RangeLimit(v0, alpha float64) float64 {
	return d.Mass * v0 * math.Cos(alpha) / d.Drag
}
