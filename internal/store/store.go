package store

import "github.com/san-kum/dragsim/internal/dynamo"

// Record is one labeled, styled trajectory.
type Record struct {
	Series dynamo.Series
	Label  string
	Style  Style
}

type State int

const (
	Empty State = iota
	Populated
)

func (s State) String() string {
	if s == Populated {
		return "populated"
	}
	return "empty"
}

// Store accumulates trajectory records for one session, in insertion
// order. Records are only ever appended or cleared all at once. A Store is
// not safe for concurrent use.
type Store struct {
	records []Record
}

func New() *Store {
	return &Store{records: make([]Record, 0)}
}

// Append adds a record styled by its position in the store. The store keeps
// its own copy of series.
func (s *Store) Append(series dynamo.Series, label string) {
	s.records = append(s.records, Record{
		Series: series.Clone(),
		Label:  label,
		Style:  StyleFor(len(s.records)),
	})
}

// Clear drops every record. Clearing an empty store is a no-op.
func (s *Store) Clear() {
	s.records = s.records[:0:0]
}

// All returns the records in insertion order. The returned slice is a copy.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int { return len(s.records) }

func (s *Store) State() State {
	if len(s.records) == 0 {
		return Empty
	}
	return Populated
}
