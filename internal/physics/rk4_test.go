package physics

import (
	"math"
	"testing"

	"github.com/san-kum/dragsim/internal/dynamo"
)

// rk4 integrates (x, y, vx, vy) under the drag acceleration. Tests use it to
// check the closed form against the equations of motion.
type rk4 struct {
	drag *LinearDrag
}

func (r rk4) derive(s [4]float64) [4]float64 {
	ax, ay := r.drag.Accel(s[2], s[3])
	return [4]float64{s[2], s[3], ax, ay}
}

func (r rk4) step(x [4]float64, dt float64) [4]float64 {
	var scratch [4]float64

	k1 := r.derive(x)
	for i := range x {
		scratch[i] = x[i] + dt*0.5*k1[i]
	}
	k2 := r.derive(scratch)
	for i := range x {
		scratch[i] = x[i] + dt*0.5*k2[i]
	}
	k3 := r.derive(scratch)
	for i := range x {
		scratch[i] = x[i] + dt*k3[i]
	}
	k4 := r.derive(scratch)

	var result [4]float64
	dt6 := dt / 6.0
	for i := range x {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result
}

func TestSolutionMatchesIntegration(t *testing.T) {
	sol := Solve()
	const dt, steps = 0.001, 5000

	for _, l := range launches {
		r := rk4{drag: NewLinearDrag(dynamo.Params{Mass: l.m, Drag: l.h, Gravity: l.g})}
		s := [4]float64{0, 0, l.v0 * math.Cos(l.alpha), l.v0 * math.Sin(l.alpha)}
		for i := 0; i < steps; i++ {
			s = r.step(s, dt)
		}

		tm := dt * steps
		want := [4]float64{
			sol.X(tm, l.m, l.h, l.v0, l.alpha, l.g),
			sol.Y(tm, l.m, l.h, l.v0, l.alpha, l.g),
			sol.VX(tm, l.m, l.h, l.v0, l.alpha, l.g),
			sol.VY(tm, l.m, l.h, l.v0, l.alpha, l.g),
		}
		for i, name := range []string{"x", "y", "vx", "vy"} {
			tol := 1e-6 * math.Max(1, math.Abs(want[i]))
			if math.Abs(s[i]-want[i]) > tol {
				t.Errorf("%+v: %s(%g) closed form %g, integrated %g", l, name, tm, want[i], s[i])
			}
		}
	}
}
