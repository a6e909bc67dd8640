package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/sim"
)

// Best is the outcome of an angle search.
type Best struct {
	Launch  config.Launch
	Range   float64
	Landing float64
}

// MaxRange searches whole-degree launch angles in the slider domain for the
// longest range, holding the other controls of base fixed. Ranges come from
// the interpolated ground crossing, so launches that are still airborne at
// the end of the grid do not compete.
func MaxRange(ctx context.Context, base config.Launch, grid sim.Grid, gravity float64) (Best, error) {
	if _, err := base.Params(gravity); err != nil {
		return Best{}, err
	}

	n := config.MaxAngleDeg - config.MinAngleDeg + 1
	gs := NewGridSearch([]string{"angle"}, [][]float64{Span(config.MinAngleDeg, config.MaxAngleDeg, n)})

	landings := make(map[int]float64, n)
	params, rng, err := gs.Search(ctx, func(p map[string]float64) (float64, error) {
		l := base
		l.AngleDeg = int(math.Round(p["angle"]))
		raw, err := sim.Evaluate(l.Raw(gravity), grid)
		if err != nil {
			return 0, err
		}
		t, x, ok := sim.Landing(raw)
		if !ok {
			return 0, fmt.Errorf("angle %d: still airborne at %.1fs", l.AngleDeg, grid.Span())
		}
		landings[l.AngleDeg] = t
		return x, nil
	})
	if err != nil {
		return Best{}, err
	}

	best := base
	best.AngleDeg = int(math.Round(params["angle"]))
	return Best{Launch: best, Range: rng, Landing: landings[best.AngleDeg]}, nil
}
