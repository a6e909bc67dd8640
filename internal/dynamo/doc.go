// Package dynamo provides the core value types shared by the trajectory
// engine:
//
//   - [Params]: one launch (angle, speed, drag, mass, gravity)
//   - [Series]: parallel time/position/speed/acceleration samples
//
// and the domain errors returned when a launch is rejected or an
// evaluation produces non-finite values.
//
// # Example
//
//	p, err := dynamo.NewParams(math.Pi/4, 100, 0.1, 1, dynamo.StandardGravity)
//	if err != nil {
//		return err
//	}
//	series, err := sim.Evaluate(p, sim.DefaultGrid())
//
// # Thread Safety
//
// Params is an immutable value. A Series is never mutated once produced by
// the evaluator; callers that want to edit samples must Clone it first.
package dynamo
