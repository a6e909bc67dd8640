package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory evaluation.
var (
	// ErrInvalidParameter indicates a launch parameter outside its valid domain
	// (drag, mass, speed and gravity must be positive and finite).
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrInvalidGrid indicates a time grid that cannot be sampled.
	ErrInvalidGrid = errors.New("dynamo: invalid time grid")

	// ErrComputation indicates an evaluation produced NaN or Inf for a
	// validated launch.
	ErrComputation = errors.New("dynamo: non-finite value in evaluated series")
)

// ComputationError locates the first non-finite sample of an evaluation.
type ComputationError struct {
	Field string
	Index int
	Time  float64
	Value float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s=%v at index %d (t=%.4f)", ErrComputation, e.Field, e.Value, e.Index, e.Time)
}

func (e *ComputationError) Unwrap() error {
	return ErrComputation
}

func invalidParam(name string, value float64) error {
	return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidParameter, name, value)
}
