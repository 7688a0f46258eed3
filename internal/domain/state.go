package domain

// State is the in-memory record holding all tasks plus the view preferences.
// It has value semantics: every transition returns a new State and never
// writes to a slice that an earlier State still references.
type State struct {
	items    []Task
	Filter   Filter
	Sort     SortMode
	Revision uint64 // Bumped whenever items change
}

// NewState returns an empty state with the given view preferences.
func NewState(filter Filter, sort SortMode) State {
	return State{Filter: filter, Sort: sort}
}

// DefaultState returns an empty state with filter "all" and sort "id".
func DefaultState() State {
	return NewState(FilterAll, SortByID)
}

// Items returns a copy of the tasks in insertion order.
func (s State) Items() []Task {
	out := make([]Task, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of tasks.
func (s State) Len() int {
	return len(s.items)
}

// Find returns the first task with the given ID.
func (s State) Find(id TaskID) (Task, bool) {
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// MaxID returns the largest task ID, or 0 for an empty state.
func (s State) MaxID() TaskID {
	var maxID TaskID
	for i, t := range s.items {
		if i == 0 || t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID
}

// ReplaceAll sets items to exactly tasks, preserving their order.
func (s State) ReplaceAll(tasks []Task) State {
	items := make([]Task, len(tasks))
	copy(items, tasks)
	s.items = items
	s.Revision++
	return s
}

// Add appends task. It performs no validation and no de-duplication.
func (s State) Add(task Task) State {
	items := make([]Task, len(s.items), len(s.items)+1)
	copy(items, s.items)
	s.items = append(items, task)
	s.Revision++
	return s
}

// ToggleComplete flips the completed flag of the first task with the given ID.
// An unknown ID returns s unchanged.
func (s State) ToggleComplete(id TaskID) State {
	idx := -1
	for i, t := range s.items {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	items := s.Items()
	items[idx].Completed = !items[idx].Completed
	s.items = items
	s.Revision++
	return s
}

// Delete removes every task with the given ID. An unknown ID returns s unchanged.
func (s State) Delete(id TaskID) State {
	items := make([]Task, 0, len(s.items))
	for _, t := range s.items {
		if t.ID != id {
			items = append(items, t)
		}
	}
	if len(items) == len(s.items) {
		return s
	}
	s.items = items
	s.Revision++
	return s
}

// SetFilter sets the filter. The value is not validated.
func (s State) SetFilter(f Filter) State {
	s.Filter = f
	return s
}

// SetSort sets the sort mode. The value is not validated.
func (s State) SetSort(m SortMode) State {
	s.Sort = m
	return s
}
