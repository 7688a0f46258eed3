package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the current projection and counters.
// Fields are ordered to minimize memory padding.
type ListTasksOutput struct {
	Filter domain.Filter   // Filter in effect
	Sort   domain.SortMode // Sort mode in effect
	Tasks  []domain.Task   // Projected tasks in display order
	Counts domain.Counts   // Counters over all tasks
}

// ListTasks is the use case for reading the view projection.
type ListTasks struct {
	store domain.TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.TaskStore) *ListTasks {
	return &ListTasks{store: store}
}

// Execute returns the projection for the current filter and sort.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	state := uc.store.State()
	return &ListTasksOutput{
		Tasks:  uc.store.View(),
		Counts: uc.store.Counts(),
		Filter: state.Filter,
		Sort:   state.Sort,
	}, nil
}
