package sim

import (
	"github.com/san-kum/dragsim/internal/dynamo"
)

// Simulator runs evaluate-then-trim on a fixed grid and reports each run to
// its observers.
type Simulator struct {
	grid      Grid
	observers []Observer
}

func New(grid Grid) *Simulator {
	return &Simulator{
		grid:      grid,
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Grid() Grid { return s.grid }

// Run evaluates p and trims the result at ground contact.
func (s *Simulator) Run(p dynamo.Params) (dynamo.Series, error) {
	raw, err := Evaluate(p, s.grid)
	if err != nil {
		s.notify(p, dynamo.Series{}, err)
		return dynamo.Series{}, err
	}

	series := Trim(raw)
	s.notify(p, series, nil)
	return series, nil
}

func (s *Simulator) notify(p dynamo.Params, series dynamo.Series, err error) {
	for _, obs := range s.observers {
		obs.OnEvaluate(p, series, err)
	}
}
