// Package memstore provides an in-memory implementation of TaskStore.
package memstore

import (
	"slices"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// viewKey identifies the inputs of a cached projection.
type viewKey struct {
	filter   domain.Filter
	sort     domain.SortMode
	revision uint64
}

// Store implements domain.TaskStore.
// Transitions are serialized; a Dispatch runs to completion before the next starts.
// Fields are ordered to minimize memory padding.
type Store struct {
	view       []domain.Task
	state      domain.State
	key        viewKey
	recomputes int
	mu         sync.Mutex
	cached     bool
}

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// New creates a Store holding initial.
func New(initial domain.State) *Store {
	return &Store{state: initial}
}

// Dispatch applies the action and returns the new state.
func (s *Store) Dispatch(a domain.Action) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.Reduce(s.state, a)
	return s.state
}

// State returns the current state.
func (s *Store) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View returns the current projection.
// The projection is recomputed only when items, filter or sort changed since the last call.
func (s *Store) View() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := viewKey{
		filter:   s.state.Filter,
		sort:     s.state.Sort,
		revision: s.state.Revision,
	}
	if !s.cached || key != s.key {
		s.view = domain.Project(s.state)
		s.key = key
		s.cached = true
		s.recomputes++
	}
	return slices.Clone(s.view)
}

// Counts returns counters over the unfiltered items.
func (s *Store) Counts() domain.Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CountTasks(s.state)
}

// Recomputes returns how many times the projection was computed.
func (s *Store) Recomputes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputes
}
