package domain

import (
	"cmp"
	"slices"
)

// Project derives the ordered, filtered sequence of tasks to display.
// The returned slice is a fresh copy; changing it does not affect s.
func Project(s State) []Task {
	tasks := s.Items()
	SortTasks(tasks, s.Sort)
	return FilterTasks(tasks, s.Filter)
}

// SortTasks orders tasks in place with a stable sort.
// Unknown modes leave the order untouched.
func SortTasks(tasks []Task, mode SortMode) {
	switch mode {
	case SortByID:
		slices.SortStableFunc(tasks, func(a, b Task) int {
			return cmp.Compare(a.ID, b.ID)
		})
	case SortRecent:
		// Descending; zero times are the smallest and end up last.
		slices.SortStableFunc(tasks, func(a, b Task) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

// FilterTasks returns the tasks kept by f. FilterAll and unknown filters keep everything.
func FilterTasks(tasks []Task, f Filter) []Task {
	var keep func(Task) bool
	switch f {
	case FilterActive:
		keep = Task.IsActive
	case FilterDone:
		keep = func(t Task) bool { return t.Completed }
	default:
		return tasks
	}

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Counts holds the derived counters. They are always computed over the
// unfiltered items.
type Counts struct {
	Total     int
	Completed int
}

// Active returns the number of tasks not completed.
func (c Counts) Active() int {
	return c.Total - c.Completed
}

// CountTasks computes the counters for s.
func CountTasks(s State) Counts {
	c := Counts{Total: len(s.items)}
	for _, t := range s.items {
		if t.Completed {
			c.Completed++
		}
	}
	return c
}
