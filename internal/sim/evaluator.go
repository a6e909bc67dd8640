package sim

import (
	"math"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/physics"
)

// Evaluate samples the closed-form solution of p at every grid time. The
// result is untrimmed and has the grid's length.
func Evaluate(p dynamo.Params, g Grid) (dynamo.Series, error) {
	if err := p.Validate(); err != nil {
		return dynamo.Series{}, err
	}

	sol := physics.Solve()
	drag := physics.NewLinearDrag(p)
	m, h, v0, alpha, grav := p.Mass, p.Drag, p.Speed, p.AngleRad, p.Gravity

	s := dynamo.NewSeries(g.Len())
	for i, t := range g.times {
		vx := sol.VX(t, m, h, v0, alpha, grav)
		vy := sol.VY(t, m, h, v0, alpha, grav)
		ax, ay := drag.Accel(vx, vy)

		s.T[i] = t
		s.X[i] = sol.X(t, m, h, v0, alpha, grav)
		s.Y[i] = sol.Y(t, m, h, v0, alpha, grav)
		s.Speed[i] = math.Hypot(vx, vy)
		s.Accel[i] = math.Hypot(ax, ay)
	}

	if err := s.CheckFinite(); err != nil {
		return dynamo.Series{}, err
	}
	return s, nil
}
