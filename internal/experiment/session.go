package experiment

import (
	"fmt"

	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/metrics"
	"github.com/san-kum/dragsim/internal/sim"
	"github.com/san-kum/dragsim/internal/store"
)

// Session is one user's comparison workspace: the current control values
// and the store of trajectories added so far. Each session owns its store;
// sessions must not share one.
type Session struct {
	Controls config.Launch
	Gravity  float64

	simulator *sim.Simulator
	store     *store.Store
	metrics   *metrics.Collector
}

// NewSession starts an empty session from cfg. The collector may be nil.
func NewSession(cfg *config.Config, collector *metrics.Collector) (*Session, error) {
	grid, err := cfg.TimeGrid()
	if err != nil {
		return nil, err
	}

	s := &Session{
		Controls:  cfg.Launch,
		Gravity:   cfg.Gravity,
		simulator: sim.New(grid),
		store:     store.New(),
		metrics:   collector,
	}
	if collector != nil {
		s.simulator.AddObserver(collector)
	}
	return s, nil
}

// Add evaluates the current controls and appends the trimmed flight.
func (s *Session) Add() (sim.Summary, error) {
	return s.AddLaunch(s.Controls)
}

// AddLaunch evaluates l and appends the trimmed flight, labeled from l.
// Nothing is appended when evaluation fails.
func (s *Session) AddLaunch(l config.Launch) (sim.Summary, error) {
	series, err := s.simulator.Run(l.Raw(s.Gravity))
	if err != nil {
		return sim.Summary{}, fmt.Errorf("%s: %w", l.Label(), err)
	}

	s.store.Append(series, l.Label())
	if s.metrics != nil {
		s.metrics.RecordAppend(s.store.Len())
	}
	return sim.Summarize(series, s.simulator.Grid()), nil
}

// Clear drops every trajectory in the session.
func (s *Session) Clear() {
	s.store.Clear()
	if s.metrics != nil {
		s.metrics.RecordClear()
	}
}

func (s *Session) Records() []store.Record { return s.store.All() }

func (s *Session) Store() *store.Store { return s.store }

func (s *Session) Grid() sim.Grid { return s.simulator.Grid() }
