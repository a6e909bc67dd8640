// Package sim evaluates launches over a time grid and cuts the result at
// ground contact.
//
//	g := sim.DefaultGrid()
//	raw, err := sim.Evaluate(p, g)
//	flight := sim.Trim(raw)
//
// [Simulator] bundles the two steps on a fixed grid and notifies
// [Observer]s after every run.
package sim
