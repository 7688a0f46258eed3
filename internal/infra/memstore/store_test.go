package memstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
)

func newTestStore() *Store {
	return New(domain.DefaultState().ReplaceAll([]domain.Task{
		{ID: 3, Title: "c"},
		{ID: 1, Title: "a", Completed: true},
		{ID: 2, Title: "b"},
	}))
}

func viewIDs(s *Store) []domain.TaskID {
	var out []domain.TaskID
	for _, t := range s.View() {
		out = append(out, t.ID)
	}
	return out
}

func TestStore_Dispatch(t *testing.T) {
	s := newTestStore()

	got := s.Dispatch(domain.ActionToggle{ID: 3})

	task, ok := got.Find(3)
	require.True(t, ok)
	assert.True(t, task.Completed)
	assert.Equal(t, got, s.State())
}

func TestStore_View(t *testing.T) {
	s := newTestStore()

	assert.Equal(t, []domain.TaskID{1, 2, 3}, viewIDs(s))

	s.Dispatch(domain.ActionSetFilter{Filter: domain.FilterActive})
	assert.Equal(t, []domain.TaskID{2, 3}, viewIDs(s))

	s.Dispatch(domain.ActionSetFilter{Filter: domain.FilterDone})
	assert.Equal(t, []domain.TaskID{1}, viewIDs(s))
}

func TestStore_View_Memoized(t *testing.T) {
	s := newTestStore()

	s.View()
	s.View()
	assert.Equal(t, 1, s.Recomputes())

	// A toggle on a missing ID leaves items untouched.
	s.Dispatch(domain.ActionToggle{ID: 99})
	s.View()
	assert.Equal(t, 1, s.Recomputes())

	// Setting the same filter again does not invalidate the cache.
	s.Dispatch(domain.ActionSetFilter{Filter: domain.FilterAll})
	s.View()
	assert.Equal(t, 1, s.Recomputes())

	s.Dispatch(domain.ActionAdd{Task: domain.Task{ID: 4}})
	s.View()
	assert.Equal(t, 2, s.Recomputes())

	s.Dispatch(domain.ActionSetSort{Sort: domain.SortRecent})
	s.View()
	assert.Equal(t, 3, s.Recomputes())
}

func TestStore_View_ReturnsCopy(t *testing.T) {
	s := newTestStore()

	v := s.View()
	v[0].Title = "mutated"

	assert.Equal(t, "a", s.View()[0].Title)
	task, _ := s.State().Find(1)
	assert.Equal(t, "a", task.Title)
}

func TestStore_Counts(t *testing.T) {
	s := newTestStore()
	s.Dispatch(domain.ActionSetFilter{Filter: domain.FilterDone})

	c := s.Counts()

	assert.Equal(t, 3, c.Total)
	assert.Equal(t, 1, c.Completed)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New(domain.DefaultState())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.Dispatch(domain.ActionAdd{Task: domain.Task{ID: domain.TaskID(id)}})
			_ = s.View()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Counts().Total)
	assert.Len(t, s.View(), 50)
}
