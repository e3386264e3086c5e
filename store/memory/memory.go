/*
Package memory provides an in-memory timesheet store for tests.

PURPOSE:
  Implements the form.Store contract without touching disk. Each save
  keeps a deep copy, so tests observe exactly what was persisted at
  save time rather than later mutations of the live sheet.
*/
package memory

import (
	"context"
	"sync"

	"github.com/warp/timeclock-engine/timesheet"
)

// Store is an in-memory label-keyed timesheet store.
type Store struct {
	mu     sync.RWMutex
	sheets map[string]*timesheet.Timesheet
	saves  int
}

// New creates an empty store.
func New() *Store {
	return &Store{sheets: make(map[string]*timesheet.Timesheet)}
}

// SaveTimesheet stores a deep copy under the label.
func (s *Store) SaveTimesheet(ctx context.Context, label string, ts *timesheet.Timesheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets[label] = ts.Clone()
	s.saves++
	return nil
}

// LoadTimesheet returns a deep copy of the stored sheet, or found=false.
func (s *Store) LoadTimesheet(ctx context.Context, label string) (*timesheet.Timesheet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ts, ok := s.sheets[label]
	if !ok {
		return nil, false, nil
	}
	return ts.Clone(), true, nil
}

// SaveCount reports how many saves have happened, for debounce assertions.
func (s *Store) SaveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
