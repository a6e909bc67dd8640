// Package physics provides the closed-form model of a projectile under
// gravity and linear drag.
//
//   - [Solve]: the memoized analytic solution x(t), y(t), vx(t), vy(t)
//   - [LinearDrag]: the force model, used for accelerations and limits
//
// The solution is derived once per process and shared by every caller:
//
//	sol := physics.Solve()
//	x := sol.X(t, m, h, v0, alpha, g)
//
// Callers must validate h > 0 and m > 0 first (see [dynamo.Params]).
package physics
