package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 2, Title: "second"},
		{ID: 1, Title: "first", Completed: true},
		{ID: 3, Title: "third"},
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, FilterAll, s.Filter)
	assert.Equal(t, SortByID, s.Sort)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
}

func TestState_ReplaceAll(t *testing.T) {
	in := sampleTasks()
	s := DefaultState().SetFilter(FilterDone).SetSort(SortRecent)

	got := s.ReplaceAll(in)

	assert.Equal(t, in, got.Items())
	assert.Equal(t, FilterDone, got.Filter, "filter must be preserved")
	assert.Equal(t, SortRecent, got.Sort, "sort must be preserved")
	assert.Greater(t, got.Revision, s.Revision)

	// The state owns a copy of the input.
	in[0].Title = "changed"
	assert.Equal(t, "second", got.Items()[0].Title)
}

func TestState_ReplaceAll_Empty(t *testing.T) {
	s := DefaultState().ReplaceAll(sampleTasks()).ReplaceAll(nil)
	assert.Equal(t, 0, s.Len())
}

func TestState_Add(t *testing.T) {
	s := DefaultState().ReplaceAll(sampleTasks())

	got := s.Add(Task{ID: 10, Title: "new"})

	require.Equal(t, 4, got.Len())
	assert.Equal(t, TaskID(10), got.Items()[3].ID)
	assert.False(t, got.Items()[3].Completed)
	assert.Equal(t, 3, s.Len(), "previous state must not change")
}

func TestState_Add_NoDeduplication(t *testing.T) {
	s := DefaultState().Add(Task{ID: 1}).Add(Task{ID: 1})
	assert.Equal(t, 2, s.Len())
}

func TestState_ToggleComplete(t *testing.T) {
	s := DefaultState().ReplaceAll(sampleTasks())

	got := s.ToggleComplete(2)

	task, ok := got.Find(2)
	require.True(t, ok)
	assert.True(t, task.Completed)

	before, _ := s.Find(2)
	assert.False(t, before.Completed, "previous state must not change")
}

func TestState_ToggleComplete_Involution(t *testing.T) {
	s := DefaultState().ReplaceAll(sampleTasks())

	got := s.ToggleComplete(1).ToggleComplete(1)

	assert.Equal(t, s.Items(), got.Items())
}

func TestState_ToggleComplete_OnlyFirstMatch(t *testing.T) {
	s := DefaultState().ReplaceAll([]Task{{ID: 7}, {ID: 7}})

	got := s.ToggleComplete(7)

	items := got.Items()
	assert.True(t, items[0].Completed)
	assert.False(t, items[1].Completed)
}

func TestState_ToggleComplete_UnknownID(t *testing.T) {
	s := DefaultState().ReplaceAll(sampleTasks())

	got := s.ToggleComplete(99)

	assert.Equal(t, s, got)
}

func TestState_Delete(t *testing.T) {
	s := DefaultState().ReplaceAll(sampleTasks())

	got := s.Delete(1)

	assert.Equal(t, 2, got.Len())
	_, ok := got.Find(1)
	assert.False(t, ok)
	assert.Equal(t, 3, s.Len(), "previous state must not change")
}

func TestState_Delete_RemovesAllMatches(t *testing.T) {
	s := DefaultState().ReplaceAll([]Task{{ID: 5}, {ID: 6}, {ID: 5}})

	got := s.Delete(5)

	assert.Equal(t, []Task{{ID: 6}}, got.Items())
}

func TestState_Delete_MissingIsIdempotent(t *testing.T) {
	s := DefaultState().ReplaceAll(sampleTasks())

	once := s.Delete(42)
	twice := once.Delete(42)

	assert.Equal(t, s, once)
	assert.Equal(t, s, twice)
}

func TestState_SetFilterAndSort_PassThrough(t *testing.T) {
	s := DefaultState().SetFilter("bogus").SetSort("whatever")

	assert.Equal(t, Filter("bogus"), s.Filter)
	assert.Equal(t, SortMode("whatever"), s.Sort)
}

func TestState_MaxID(t *testing.T) {
	assert.Equal(t, TaskID(0), DefaultState().MaxID())
	assert.Equal(t, TaskID(3), DefaultState().ReplaceAll(sampleTasks()).MaxID())
	assert.Equal(t, TaskID(-1), DefaultState().ReplaceAll([]Task{{ID: -4}, {ID: -1}}).MaxID())
}

func TestState_UniqueIDsAfterOperations(t *testing.T) {
	s := DefaultState()
	ops := []Action{
		ActionAdd{Task: Task{ID: 1}},
		ActionAdd{Task: Task{ID: 2}},
		ActionToggle{ID: 1},
		ActionDelete{ID: 3},
		ActionAdd{Task: Task{ID: 3}},
		ActionDelete{ID: 2},
		ActionToggle{ID: 2},
		ActionAdd{Task: Task{ID: 4}},
		ActionDelete{ID: 2},
	}
	for _, op := range ops {
		s = Reduce(s, op)
	}

	seen := map[TaskID]bool{}
	for _, task := range s.Items() {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
	assert.Equal(t, map[TaskID]bool{1: true, 3: true, 4: true}, seen)
}

func TestReduce(t *testing.T) {
	base := DefaultState().ReplaceAll(sampleTasks())

	tests := []struct {
		name   string
		action Action
		want   State
	}{
		{"replace all", ActionReplaceAll{Tasks: []Task{{ID: 9}}}, base.ReplaceAll([]Task{{ID: 9}})},
		{"add", ActionAdd{Task: Task{ID: 9}}, base.Add(Task{ID: 9})},
		{"toggle", ActionToggle{ID: 3}, base.ToggleComplete(3)},
		{"delete", ActionDelete{ID: 3}, base.Delete(3)},
		{"set filter", ActionSetFilter{Filter: FilterActive}, base.SetFilter(FilterActive)},
		{"set sort", ActionSetSort{Sort: SortRecent}, base.SetSort(SortRecent)},
		{"nil action", nil, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(base, tt.action))
		})
	}
}
